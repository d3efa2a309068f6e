/*
Package domain contains the shared vocabulary of the record runtime.

It holds the sentinel errors every layer matches with errors.Is and the
lifecycle events the program emits for observability. This package is kept
free of I/O and of dependencies on the other packages.

# Key Entities

  - ErrNotFound, ErrNoSchema, ErrExit: sentinel errors.
  - LifecycleHooks: callbacks for schema changes, stored records and commands.
*/
package domain
