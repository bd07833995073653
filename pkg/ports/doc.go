/*
Package ports defines the driven ports (interfaces) for the not-a-timer
runtime.

These interfaces decouple the loop runtime from external implementations,
allowing run history to be kept in memory or in a shared backend like Redis.

# Key Interfaces

  - RunStore: Responsible for persisting and querying RunRecord entries.
*/
package ports
