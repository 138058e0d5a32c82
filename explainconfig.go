// Package explainconfig explains EDOT Collector YAML configurations by
// sending each component to a local language model, augmenting the prompt
// with documentation snippets retrieved from two locally cached corpora:
// the bulk Elastic documentation archive and per-component reference pages
// harvested from the upstream collector repository.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, http/, yaml/, openai/).
package explainconfig
