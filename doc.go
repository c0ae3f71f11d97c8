// Package coursehub is the Composition Root for the CourseHub client.
//
// It connects the course document model (Domain Layer) with the catalog
// persistence adapters (Persistence Layer) using the Hexagonal Architecture
// pattern.
//
// Philosophy:
//
// CourseHub is a client-side authoring tool. A course is an ordered sequence
// of typed content blocks assembled in a local editing session and published
// into a shared catalog. The catalog is deliberately simple: one JSON
// document shared by every browsing and editing context, updated with plain
// read-modify-write cycles and no cross-process locking.
//
// Features:
//
//   - **Document model**: typed content elements with pure draft mutations.
//   - **Derived metrics**: word count, reading time and auto description
//     computed from the draft, never stored in it.
//   - **One-way publish**: validate, freeze, append; the draft is discarded.
//   - **Shared catalog (FS adapter)**: atomic file writes, demo seeding,
//     change watching via fsnotify.
//   - **Extensible**: other backends plug in via `catalog.Store`.
//
// Usage:
//
//	svc, err := coursehub.New("./catalog.json",
//		coursehub.WithLogger(logger),
//	)
//
//	// Author a course
//	session := coursehub.NewSession(svc.Store())
//	session.Rename("CSS Basics")
//	session.AddElement(coursehub.TypeParagraph)
//	published, err := session.Publish(ctx)
package coursehub
