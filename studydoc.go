// Package studydoc provides a local, CLI-based study assistant.
// It imports PDF, Markdown and HTML documents, splits their text into
// overlapping chunks, retrieves the chunks most relevant to a question
// with a lexical scorer, and uses a generative model to answer questions,
// explain concepts, and produce summaries, flashcards and quizzes.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, gemini/, goldmark/).
package studydoc
