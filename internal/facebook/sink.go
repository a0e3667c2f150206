package facebook

// UserDataType identifies a hashed user data field on the App Events side.
// Values are the raw keys the SDK uses.
type UserDataType string

const (
	UserDataEmail       UserDataType = "em"
	UserDataFirstName   UserDataType = "fn"
	UserDataLastName    UserDataType = "ln"
	UserDataPhone       UserDataType = "ph"
	UserDataDateOfBirth UserDataType = "db"
	UserDataGender      UserDataType = "ge"
	UserDataCity        UserDataType = "ct"
	UserDataState       UserDataType = "st"
	UserDataZip         UserDataType = "zp"
	UserDataCountry     UserDataType = "country"
)

// AppEventsSink receives the translated calls. Implementations wrap the
// native App Events SDK (or anything that records its calls).
//
// Event calls are fire-and-forget: an implementation that can fail is
// expected to report the failure itself.
type AppEventsSink interface {
	// SetUserID sets the user identifier slot. An empty id clears it.
	SetUserID(userID string)
	SetUserData(value string, field UserDataType)
	ClearUserData()
	LogEvent(name EventName, params Parameters)
	LogEventWithValue(name EventName, valueToSum float64, params Parameters)
	LogPurchase(amount float64, currency string, params Parameters)
	// Instance returns the opaque native handle.
	Instance() any
}

// SettingsSink receives data processing options.
type SettingsSink interface {
	SetDataProcessingOptions(options []string) error
	SetDataProcessingOptionsForRegion(options []string, country, state int32) error
}
