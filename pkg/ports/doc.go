/*
Package ports defines the interfaces between the Gantry core and its
adapters, following Hexagonal Architecture.

Driven ports (implemented by adapters, consumed by the core and the host):

  - RecipeCatalog: read-only lookup of recipe definitions.
  - RunStore: persistence of run state for stop-and-resume.
  - AgentRunner: the single suspension point — invoking the external
    text-generating agent.

The package also exports RunStoreContract, a reusable test suite any
RunStore implementation can run to verify compliance.
*/
package ports
