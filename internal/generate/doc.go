// Package generate talks to the hosted language models that produce
// vocabulary lists. It builds the system instructions, selects between the
// OpenAI and Gemini backends, and guards every call with a circuit breaker.
package generate
