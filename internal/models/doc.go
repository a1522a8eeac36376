// Package models provides functionality for listing the OpenAI chat models
// available with the configured API key, so users can pick one for
// vocabulary generation.
package models
