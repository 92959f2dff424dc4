// Package resource limits the resources correction precomputation may use.
//
//   - Memory: bytes held by in-process table caches (non-blocking, fail-fast)
//   - Builds: number of tables computed concurrently
//   - Store operations: token bucket over artifact loads and stores
//
// Example:
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes:    64 << 20,
//	    MaxConcurrentBuilds: 4,
//	    StoreOpsPerSec:      50,
//	})
//
//	if err := rc.AcquireBuild(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseBuild()
//
// All methods are safe for concurrent use and treat a nil *Controller as
// unlimited.
package resource
