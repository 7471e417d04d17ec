// Package seating implements the guest-seating consistency and
// table-layout feature.
//
// It keeps two collections consistent per wedding:
//  1. Guests: RSVP records, the source of truth for attendance.
//  2. Seating: table assignments, carrying denormalized guest fields.
//
// # Components
//
//   - sync.Reconciler: the bidirectional reconciliation state machine.
//   - conflict.Detector/Resolver: classify residual inconsistencies and
//     apply per-conflict resolution strategies.
//   - capacity.Index: occupancy lookups and best-fit table selection.
//   - layout.Engine: places tables in the hall with one of six
//     strategies.
//   - Service: orchestrates the above and exports layouts and reports
//     to object storage.
//
// # HTTP Endpoints
//
//   - POST /weddings/:weddingId/seating/sync : reconcile every guest.
//   - POST /weddings/:weddingId/seating/sync/reverse : push seating back onto guests.
//   - POST /weddings/:weddingId/seating/sync/:guestId : reconcile one guest.
//   - GET  /weddings/:weddingId/seating/conflicts : list inconsistencies.
//   - POST /weddings/:weddingId/seating/conflicts/resolve : resolve one conflict.
//   - POST /weddings/:weddingId/seating/layout : generate a table layout.
//   - GET  /weddings/:weddingId/seating/report : last sync report.
package seating
