// Connect4Good - Volunteer Coordination Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/connect4good

// Package recommend ranks events by how closely their descriptions match a
// user's profile text.
//
// # Scoring
//
// The user text (skills, interests and past experience joined by spaces)
// and every event description are embedded through an Embedder. Each event
// is scored by the cosine similarity of its embedding to the user's:
//
//	score = dot(u, e) / (|u| * |e|)
//
// An empty vector, a zero-norm vector or a length mismatch scores 0.
//
// # Ranking
//
// Events are sorted by descending score with a stable sort, so equal
// scores keep store order, and the first Config.TopK are returned. An empty
// catalog returns an empty list without calling the embedder.
//
// # Usage
//
//	engine, err := recommend.NewEngine(db, db, llmClient, recommend.DefaultConfig(), logger)
//	titles, err := engine.Recommend(ctx, "ana@example.com")
//
// Event embeddings are requested concurrently, bounded by
// Config.MaxConcurrency. Any embedding failure fails the whole call with a
// models.ErrExternalService error; nothing is retried.
package recommend
