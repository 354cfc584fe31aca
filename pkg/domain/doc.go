/*
Package domain contains the core domain models for the Gantry orchestrator.

It defines the fundamental entities of a recipe run: Recipes, Steps,
Transitions, outcome Tags and the mutable Run state. This package is kept
pure and free of external dependencies like I/O or persistence, following
Hexagonal Architecture principles.

# Key Entities

  - Recipe: A static workflow definition (steps, transitions, guardrail).
  - Step: One stage of a recipe with its accepted outcome tags.
  - Transition: The rule mapping an outcome to the next step or an exit.
  - OutcomeResult: The validated result of extracting an outcome from agent text.
  - NextAction: What the host should do after a step (advance or exit).
  - Run: Captures the runtime snapshot of one recipe invocation.
*/
package domain
