/*
Package ports defines the driven ports (interfaces) for the intake engine.

These interfaces decouple the conversation core from external implementations,
allowing the engine to work with various answer sinks and script sources.

# Key Interfaces

  - AnswerSink: Receives the finished answer set of a conversation, exactly once.
  - AnswerStore: A sink that can also read answers back (used by tooling, never by the core).
  - ScriptLoader: Produces the script a conversation follows (e.g., from YAML or Loam).
  - Conversation: The presentation boundary exposed by the engine.
*/
package ports
