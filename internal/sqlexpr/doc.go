// Package sqlexpr generates the classification expressions shared by every query path.
//
// Each generator is parameterized only by column names so the same expression can be
// applied to raw observations (alias o), filtered observations, or the network explorer
// view (alias ne). Every generator has an in-process twin driven by the same rule table.
//
// # Generators
//
//	┌──────────────────┬──────────────────────────┬──────────────────────────────┐
//	│  Expression      │  Go twin                 │  Output                      │
//	├──────────────────┼──────────────────────────┼──────────────────────────────┤
//	│  RadioTypeExpr   │  InferRadioType          │  W, E, B, L, G, N, ?         │
//	│  SecurityExpr    │  ClassifySecurity        │  OPEN, WEP, WPA ... Unknown  │
//	│  ChannelExpr     │  ChannelFromFrequency    │  channel number or NULL      │
//	│  ThreatScoreExpr │  BlendThreatScore        │  0-100                       │
//	│  ThreatLevelExpr │  ThreatLevel             │  CRITICAL ... NONE           │
//	│  SignalBucketExpr│  SignalBucket            │  excellent ... poor          │
//	└──────────────────┴──────────────────────────┴──────────────────────────────┘
//
// # Radio type inference
//
//	stored radio_type ──▶ frequency (WiFi ranges) ──▶ capability tokens ──▶ ?
//
// Frequency is checked before capabilities.
//
// # Security cascade
//
// Rules are evaluated top to bottom and the first match wins:
//
//	empty                      → OPEN
//	WEP                        → WEP
//	[ESS] / [IBSS] only        → OPEN
//	RSN-OWE                    → WPA3-OWE
//	RSN-SAE                    → WPA3-SAE
//	(WPA3|SAE) + (EAP|MGT)     → WPA3-E
//	(WPA3|SAE)                 → WPA3
//	(WPA2|RSN) + (EAP|MGT)     → WPA2-E
//	(WPA2|RSN)                 → WPA2
//	WPA- without WPA2          → WPA
//	WPA without WPA2/WPA3/RSN  → WPA
//	WPS without WPA/RSN        → WPS
//	(CCMP|TKIP|AES)            → WPA2
//	otherwise                  → Unknown
//
// The SQL only uses UPPER, COALESCE, TRIM, REPLACE and LIKE so it runs unchanged on
// PostgreSQL and DuckDB.
package sqlexpr
