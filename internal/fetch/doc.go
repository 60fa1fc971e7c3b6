// Package fetch provides the acquisition orchestration logic for
// materializing dataset groups into the local cache.
//
// # Manager
//
// The Manager schedules one task per resource across all groups whose
// marker directory is absent, runs them on a bounded worker pool, and
// collects a per-resource Outcome:
//
//	manager := fetch.NewManager(settings, func(event fetch.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	outcomes := manager.FetchGroups(ctx, reg.Groups())
//	for _, o := range fetch.Failed(outcomes) {
//	    fmt.Printf("%s: %v\n", o.Spec.URL, o.Err)
//	}
//
// # Concurrency
//
// The pool size defaults to the available parallelism
// (settings.MaxConcurrentFetches overrides it). Tasks are independent and
// unordered; each writes a distinct destination path, so the filesystem is
// the only shared resource. One task's failure is recorded in its Outcome
// and never blocks or cancels siblings.
//
// # Idempotence
//
// Existence is checked per group, immediately before scheduling, against
// the group's marker directory. A second run over a fully materialized
// cache performs zero network fetches. There is no retry or resume; a
// failed resource is retried by re-running acquisition.
package fetch
