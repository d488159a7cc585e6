// Package translation translates Japanese prompts to English. Backends
// implement Translator; Client wraps a backend with the soft-failure
// contract used by the prompt pipeline: a failed call falls back to the
// untranslated prompt instead of returning an error.
package translation
