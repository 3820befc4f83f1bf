// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

/*
Package llm is a client for an OpenAI-compatible embedding and chat API.

Client.Embed calls POST {base_url}/embeddings and Client.Complete calls
POST {base_url}/chat/completions with a single user message. Each endpoint
has its own sony/gobreaker circuit breaker; once the consecutive failure
threshold is reached the breaker opens and calls fail fast until it moves
to half-open.

Every failure is returned as a models.ErrExternalService error. The detail
names the service and at most the upstream status code; the upstream body
and transport errors stay in the wrapped cause:

	client, err := llm.NewClient(&cfg.LLM)
	vec, err := client.Embed(ctx, "cooking community none")
	if errors.Is(err, models.ErrExternalService) {
	    // 424 to the caller
	}

Nothing is retried, cached or streamed.
*/
package llm
