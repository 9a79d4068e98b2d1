// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// Users
	KeyUserNotFound = "user.not_found"

	// Cars
	KeyCarCreated  = "car.created"
	KeyCarUpdated  = "car.updated"
	KeyCarDeleted  = "car.deleted"
	KeyCarNotFound = "car.not_found"

	// Motorcycles
	KeyMotorcycleCreated  = "motorcycle.created"
	KeyMotorcycleUpdated  = "motorcycle.updated"
	KeyMotorcycleDeleted  = "motorcycle.deleted"
	KeyMotorcycleNotFound = "motorcycle.not_found"

	// Featured items
	KeyFeaturedCreated   = "featured.created"
	KeyFeaturedUpdated   = "featured.updated"
	KeyFeaturedDeleted   = "featured.deleted"
	KeyFeaturedNotFound  = "featured.not_found"
	KeyFeaturedDuplicate = "featured.duplicate_vehicle"
	KeyFeaturedBadRef    = "featured.invalid_reference"

	// Discounts
	KeyDiscountCreated   = "discount.created"
	KeyDiscountUpdated   = "discount.updated"
	KeyDiscountDeleted   = "discount.deleted"
	KeyDiscountNotFound  = "discount.not_found"
	KeyDiscountDuplicate = "discount.duplicate_vehicle"
	KeyDiscountBadRef    = "discount.invalid_reference"

	// Contact messages
	KeyContactCreated  = "contact.created"
	KeyContactNotFound = "contact.not_found"

	// Subscribers
	KeySubscriberCreated   = "subscriber.created"
	KeySubscriberDuplicate = "subscriber.duplicate_email"
	KeySubscriberNotFound  = "subscriber.not_found"
	KeySubscriberActive    = "subscriber.active"
	KeySubscriberInactive  = "subscriber.inactive"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
)
