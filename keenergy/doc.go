// Package keenergy is a client for the Web-HMI HTTP API of KeEnergy heat pump
// controllers. It maps the controller's symbolic variable paths onto a typed
// catalog of fields grouped by section (system, heat pump, heat circuit, ...),
// batches reads and writes into single HTTP calls, and decodes the ordered
// responses back into grouped, coerced values.
//
// The usual entry point is NewClient followed by either the per-section
// services (Client.System, Client.HeatPump, ...) or the batch operations
// Client.ReadFields and Client.WriteFields.
package keenergy
