// Package server exposes map generation over HTTP.
//
// Routes (all JSON):
//
//	GET /api/health            {"status":"ok"}
//	GET /api/template          tile count and sample description
//	GET /api/generate          ?seed=TEXT | ?radius=N | ?width=W&height=H
//	GET /api/seeds/{seed}      decoded seed
//
// One Template is built at startup and shared read-only by every request;
// each request runs its own Generator under the configured timeout and cell
// limit.
//
// Configuration comes from the environment (see LoadConfig):
// HEXFORGE_ADDR, HEXFORGE_SAMPLE, HEXFORGE_TIMEOUT, HEXFORGE_MAX_CELLS,
// HEXFORGE_ROTATIONS_ONLY.
package server
