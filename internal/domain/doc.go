// Package domain holds the core entities and the ports the application
// service depends on. Adapters implement these interfaces; the service
// layer never imports an adapter directly.
package domain
