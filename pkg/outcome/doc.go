/*
Package outcome turns free-form agent text into a validated step outcome.

Agents are asked to end their reply with a small JSON envelope naming an
outcome tag, but in practice the envelope arrives wrapped in prose, markdown
fences or not at all. This package is the defensive boundary around that
untrusted text: it locates the trailing JSON object, parses it without ever
panicking, and validates the result against the step's accepted tag set.

Extract is the single entry point; the lower-level pieces (StripFences,
LocateBlock, SafeParse, Validate) are exported for hosts that need finer
control or want to report intermediate failures differently.

All failures are values. A failed extraction is a domain.OutcomeResult with
Success false and a message specific enough for the host to choose a
corrective prompt: "no JSON block found", a parse error with the malformed
substring preserved, or a validation error naming the offending value.
*/
package outcome
