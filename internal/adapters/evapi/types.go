package evapi

// Upstream catalog data shapes. Field names mirror the JSON the upstream
// API emits; optional fields are pointers or omitempty strings.

// Paginated is the upstream's standard page wrapper.
type Paginated[T any] struct {
	Data         []T `json:"data"`
	PageNumber   int `json:"pageNumber"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	TotalPages   int `json:"totalPages"`
}

// Brand is a manufacturer in the brand directory.
type Brand struct {
	ID           int    `json:"id"`
	BrandName    string `json:"brandName"`
	BrandLogoURL string `json:"brandLogoUrl,omitempty"`
	AddressLine  string `json:"adressLine,omitempty"`
	BrandPhone   string `json:"brandPhone,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// BrandRequest creates or updates a brand. Logo upload is handled by the
// dashboard's upload widget and is out of scope here.
type BrandRequest struct {
	BrandName    string `json:"brandName"`
	AddressLine  string `json:"adressLine,omitempty"`
	BrandPhone   string `json:"brandPhone,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
}

// BrandAddress is a brand location (dealership, office, warehouse).
type BrandAddress struct {
	ID            int      `json:"id"`
	BrandID       int      `json:"brandId"`
	AddressName   string   `json:"addressName"`
	Country       string   `json:"country,omitempty"`
	Estate        string   `json:"estate,omitempty"`
	City          string   `json:"city,omitempty"`
	PostalCode    string   `json:"postalCode,omitempty"`
	StreetName    string   `json:"streetName,omitempty"`
	StreetNumber  string   `json:"streetNumber,omitempty"`
	ContactNumber string   `json:"contactNumber,omitempty"`
	ContactEmail  string   `json:"contactEmail,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// BrandAddressRequest creates a brand address.
type BrandAddressRequest struct {
	BrandID       int      `json:"BrandId"`
	AddressName   string   `json:"AddressName"`
	Country       string   `json:"Country,omitempty"`
	Estate        string   `json:"Estate,omitempty"`
	City          string   `json:"City,omitempty"`
	PostalCode    string   `json:"PostalCode,omitempty"`
	StreetName    string   `json:"StreetName,omitempty"`
	StreetNumber  string   `json:"StreetNumber,omitempty"`
	ContactNumber string   `json:"ContactNumber,omitempty"`
	ContactEmail  string   `json:"ContactEmail,omitempty"`
	Latitude      *float64 `json:"Latitude,omitempty"`
	Longitude     *float64 `json:"Longitude,omitempty"`
}

// BaseVehicle is a model family (brand + model + year).
type BaseVehicle struct {
	ID         int    `json:"id"`
	BrandID    int    `json:"brandId"`
	BrandName  string `json:"brandName"`
	ModelName  string `json:"modelName,omitempty"`
	ModelYear  int    `json:"modelYear,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	IsFavorite bool   `json:"isFavorite,omitempty"`
}

// BaseVehicleRequest creates or updates a base vehicle.
type BaseVehicleRequest struct {
	BrandID    int    `json:"brandId"`
	BrandName  string `json:"brandName"`
	ModelName  string `json:"modelName,omitempty"`
	ModelYear  int    `json:"modelYear,omitempty"`
	IsFavorite *bool  `json:"isFavorite,omitempty"`
}

// VehicleVersion is a concrete trim of a base vehicle.
type VehicleVersion struct {
	ID            int     `json:"id"`
	BaseVehicleID int     `json:"baseVehicleId"`
	VersionName   string  `json:"versionName"`
	Price         float64 `json:"price,omitempty"`
	RangeKM       int     `json:"rangeKm,omitempty"`
	TopSpeedKMH   int     `json:"topSpeedKmh,omitempty"`
	BatteryKWH    float64 `json:"batteryKwh,omitempty"`
}

// VehicleFilters narrows a vehicle version listing.
type VehicleFilters struct {
	VersionName   string
	BaseVehicleID int
	BrandID       int
	MinPrice      float64
	MaxPrice      float64
	MinRange      int
	MaxRange      int
	MinSpeed      int
	PageSize      int
	PageNumber    int
}

// InventoryItem is a physical vehicle in dealer stock.
type InventoryItem struct {
	ID               int    `json:"id"`
	VIN              string `json:"vin"`
	SerialNumber     string `json:"serialNumber,omitempty"`
	VehicleVersionID int    `json:"vehicleVersionId"`
	VehicleColorID   int    `json:"vehicleColorId,omitempty"`
	Location         string `json:"location,omitempty"`
	Status           string `json:"status,omitempty"`
	Mileage          int    `json:"mileage,omitempty"`
	ModelYear        int    `json:"modelYear,omitempty"`
	EntryDate        string `json:"entryDate,omitempty"`
	SupplierName     string `json:"supplierName,omitempty"`
	HasExited        bool   `json:"hasExited,omitempty"`
}

// InventoryItemRequest creates an inventory item.
type InventoryItemRequest struct {
	VIN              string `json:"vin"`
	SerialNumber     string `json:"serialNumber,omitempty"`
	VehicleVersionID int    `json:"vehicleVersionId"`
	VehicleColorID   int    `json:"vehicleColorId,omitempty"`
	Location         string `json:"location,omitempty"`
	Status           string `json:"status,omitempty"`
	Mileage          int    `json:"mileage,omitempty"`
	SupplierName     string `json:"supplierName,omitempty"`
}

// InventoryItemUpdate updates an inventory item in place.
type InventoryItemUpdate struct {
	ID           int    `json:"id"`
	SerialNumber string `json:"serialNumber,omitempty"`
	Location     string `json:"location,omitempty"`
	Status       string `json:"status,omitempty"`
	Mileage      *int   `json:"mileage,omitempty"`
	SupplierName string `json:"supplierName,omitempty"`
}

// InventoryFilters narrows an inventory listing.
type InventoryFilters struct {
	VIN              string
	SerialNumber     string
	VehicleVersionID int
	Location         string
	Status           string
	MinMileage       *int
	MaxMileage       *int
	ModelYear        int
	EntryDateFrom    string
	EntryDateTo      string
	SupplierName     string
	HasExited        *bool
	PageSize         int
	PageNumber       int
}

// InventoryMovement records an item entering, moving, or leaving stock.
type InventoryMovement struct {
	ID              int    `json:"id"`
	InventoryItemID int    `json:"inventoryItemId"`
	MovementType    string `json:"movementType"`
	FromLocation    string `json:"fromLocation,omitempty"`
	ToLocation      string `json:"toLocation,omitempty"`
	MovementDate    string `json:"movementDate,omitempty"`
	Comment         string `json:"comment,omitempty"`
}

// InventoryMovementRequest records a new movement.
type InventoryMovementRequest struct {
	InventoryItemID int    `json:"inventoryItemId"`
	MovementType    string `json:"movementType"`
	FromLocation    string `json:"fromLocation,omitempty"`
	ToLocation      string `json:"toLocation,omitempty"`
	Comment         string `json:"comment,omitempty"`
}

// UserProfile is an administrative user's directory entry.
type UserProfile struct {
	UserID          int    `json:"userId"`
	FullName        string `json:"fullName"`
	Name            string `json:"name"`
	LastNameP       string `json:"lastNameP,omitempty"`
	LastNameM       string `json:"lastNameM,omitempty"`
	Email           string `json:"email"`
	City            string `json:"city,omitempty"`
	Address         string `json:"address,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	HireDate        string `json:"hireDate,omitempty"`
	BirthDate       string `json:"birthDate,omitempty"`
	AccountStatus   int    `json:"accountStatus"`
	Roles           string `json:"roles,omitempty"`
	ProfileImageURL string `json:"profileImageUrl,omitempty"`
}

// UserRegistration creates a new user with a full profile.
type UserRegistration struct {
	Password    string `json:"password"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastNameP   string `json:"lastNameP"`
	LastNameM   string `json:"lastNameM"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	HireDate    string `json:"hireDate,omitempty"`
	BirthDate   string `json:"birthDate,omitempty"`
}

// UserUpdate edits the mutable fields of a user account.
type UserUpdate struct {
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"firstName,omitempty"`
	LastNameP   string `json:"lastNameP,omitempty"`
	LastNameM   string `json:"lastNameM,omitempty"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	IsActive    *bool  `json:"isActive,omitempty"`
}
