package registry

// Remote endpoints for the public datasets the pipeline consumes.
const (
	naturalEarth10mURL  = "https://api.github.com/repos/nvkelso/natural-earth-vector/contents/10m_physical"
	naturalEarth110mURL = "https://api.github.com/repos/nvkelso/natural-earth-vector/contents/110m_physical"
	gshhgZipURL         = "https://www.ngdc.noaa.gov/mgg/shorelines/data/gshhg/latest/gshhg-shp-2.3.7.zip"

	// ETOPO 15-arc-second bed elevation for the Korean peninsula, exported
	// through the NOAA image server. The bbox and mosaic rule live in the
	// query string, so the filename must be set explicitly.
	koreaBedURL = "https://gis.ngdc.noaa.gov/arcgis/rest/services/DEM_mosaics/DEM_all/ImageServer/exportImage?bbox=124.00000,33.00000,134.00000,43.00000&bboxSR=4326&size=2400,2400&imageSR=4326&format=tiff&pixelType=F32&interpolation=+RSP_NearestNeighbor&compression=LZ77&renderingRule={%22rasterFunction%22:%22none%22}&mosaicRule={%22where%22:%22Name=%27ETOPO_2022_v1_15s_bed_elev%27%22}&f=image"
)

var blueMarbleURLs = []string{
	"https://eoimages.gsfc.nasa.gov/images/imagerecords/57000/57752/land_shallow_topo_2048.jpg",
	"https://eoimages.gsfc.nasa.gov/images/imagerecords/57000/57752/land_shallow_topo_8192.tif",
	"https://eoimages.gsfc.nasa.gov/images/imagerecords/73000/73938/world.200401.3x5400x2700.png",
	"https://eoimages.gsfc.nasa.gov/images/imagerecords/74000/74167/world.200410.3x5400x2700.png",
}

var etopoURLs = []string{
	"https://www.ngdc.noaa.gov/mgg/global/relief/ETOPO2022/data/60s/60s_bed_elev_gtif/ETOPO_2022_v1_60s_N90W180_bed.tif",
	"https://www.ngdc.noaa.gov/mgg/global/relief/ETOPO2022/data/60s/60s_geoid_gtif/ETOPO_2022_v1_60s_N90W180_geoid.tif",
	"https://www.ngdc.noaa.gov/mgg/global/relief/ETOPO2022/data/60s/60s_surface_elev_gtif/ETOPO_2022_v1_60s_N90W180_surface.tif",
}

// Registry declares the dataset groups the pipeline acquires.
type Registry struct {
	lister DirectoryLister
}

// NewRegistry creates a registry. The lister resolves the Natural Earth
// groups at fetch time; pass a static-manifest implementation in
// environments without the listing endpoint.
func NewRegistry(lister DirectoryLister) *Registry {
	return &Registry{lister: lister}
}

// Groups returns all declared dataset groups. Resource lists for the
// Natural Earth groups are not resolved here; resolution happens when the
// fetcher schedules the group.
func (r *Registry) Groups() []Group {
	groups := []Group{
		{
			Name:      "blue-marble",
			Subdir:    "blue-marble",
			Marker:    "blue-marble",
			Resources: staticSpecs(blueMarbleURLs, "blue-marble"),
		},
		{
			Name:   "ETOPO",
			Subdir: "ETOPO",
			Marker: "ETOPO",
			Resources: append(staticSpecs(etopoURLs, "ETOPO"), ResourceSpec{
				URL:      koreaBedURL,
				Filename: "ETOPO_2022_v1_15s_N43W124_bed.tiff",
				Subdir:   "ETOPO",
			}),
		},
		{
			// The shoreline zip expands next to the cache root; its
			// extracted directory is the existence marker.
			Name:   "gshhg",
			Marker: "gshhg-shp-2.3.7",
			Resources: []ResourceSpec{
				{URL: gshhgZipURL, Filename: FilenameFromURL(gshhgZipURL)},
			},
		},
		{
			Name:   "ne_10m_land",
			Subdir: "ne_10m_land",
			Marker: "ne_10m_land",
			Source: listedGroup{
				Lister: r.lister,
				URL:    naturalEarth10mURL,
				Prefix: "ne_10m_land.",
				Subdir: "ne_10m_land",
			},
		},
		{
			Name:   "ne_110m_land",
			Subdir: "ne_110m_land",
			Marker: "ne_110m_land",
			Source: listedGroup{
				Lister: r.lister,
				URL:    naturalEarth110mURL,
				Prefix: "ne_110m_land.",
				Subdir: "ne_110m_land",
			},
		},
	}
	return groups
}

func staticSpecs(urls []string, subdir string) []ResourceSpec {
	specs := make([]ResourceSpec, len(urls))
	for i, u := range urls {
		specs[i] = ResourceSpec{URL: u, Filename: FilenameFromURL(u), Subdir: subdir}
	}
	return specs
}
