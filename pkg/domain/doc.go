/*
Package domain contains the core domain models of the intake conversation engine.

It defines the script a conversation follows, the explicit phase a conversation
is in, and the read-only snapshot handed to presentation layers. This package is
kept pure and free of external dependencies like I/O or persistence.

# Key Entities

  - Step: One prompt of the script (informational, choice, or free text).
  - Script: The ordered, linear list of steps.
  - Phase: The single explicit state of a conversation (Idle → Revealing → Awaiting… → Done).
  - Snapshot: A copy of transcript, answers and prompt for rendering.
  - SummaryLine: One labelled answer of the closing summary.
*/
package domain
