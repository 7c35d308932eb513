// Package jaundice rates news articles for yellow-press tone. It fetches
// articles, extracts their plain-text body through site-specific adapters,
// normalizes the vocabulary to canonical lemmas, and measures the share of
// words that belong to a charged lexicon.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., goquery/, http/, morph/).
package jaundice
