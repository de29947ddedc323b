package services

// ServiceContainer holds every service for handler wiring.
type ServiceContainer struct {
	AuthService     AuthService
	PropertyService PropertyService
	MessageService  MessageService
}
