/*
Package ports defines the driven ports (interfaces) of the record runtime.

These interfaces decouple the command program from concrete implementations,
so the storage backend can be swapped without touching schema or command logic.

# Key Interfaces

  - RecordStore: append-only, index-addressed storage for validated records.

The tests subpackage holds RecordStoreContractTest, a reusable suite every
RecordStore implementation should pass.
*/
package ports
