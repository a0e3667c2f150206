package facebook

// ParameterName is an App Events parameter key. Custom properties use their
// own key as the parameter name.
type ParameterName string

// Parameters is the parameter map handed to the sink with every event.
type Parameters map[ParameterName]any

// Standard App Events parameter names.
const (
	ParamNameContentID      ParameterName = "fb_content_id"
	ParamNameMaxRatingValue ParameterName = "fb_max_rating_value"
	ParamNameAdType         ParameterName = "ad_type"
	ParamNameOrderID        ParameterName = "fb_order_id"
	ParamNameCurrency       ParameterName = "fb_currency"
	ParamNameDescription    ParameterName = "fb_description"
	ParamNameSearchString   ParameterName = "fb_search_string"
)

// Host-side property keys with a dedicated meaning.
const (
	ParamProductID   = "product_id"
	ParamRating      = "rating"
	ParamName        = "name"
	ParamOrderID     = "order_id"
	ParamCurrency    = "currency"
	ParamDescription = "description"
	ParamQuery       = "query"
	ParamValue       = "value"
	ParamPrice       = "price"
	ParamRevenue     = "revenue"
)

// reservedKeywords never reach track events as custom parameters.
var reservedKeywords = map[string]struct{}{
	ParamProductID:   {},
	ParamRating:      {},
	ParamName:        {},
	ParamOrderID:     {},
	ParamCurrency:    {},
	ParamDescription: {},
	ParamQuery:       {},
	ParamValue:       {},
	ParamPrice:       {},
	ParamRevenue:     {},
}

// IsReserved reports whether key is dropped from track event parameters.
func IsReserved(key string) bool {
	_, ok := reservedKeywords[key]
	return ok
}

// projectProperties copies properties into a fresh parameter map. Numbers
// and booleans keep their value, everything else is described.
func projectProperties(properties map[string]any, filterReserved bool) Parameters {
	params := make(Parameters, len(properties))
	for key, value := range properties {
		if filterReserved && IsReserved(key) {
			continue
		}
		if isNumeric(value) {
			params[ParameterName(key)] = value
		} else {
			params[ParameterName(key)] = Describe(value)
		}
	}
	return params
}

// described maps a property onto a standard parameter as a string.
var described = []struct {
	key   string
	param ParameterName
}{
	{ParamProductID, ParamNameContentID},
	{ParamName, ParamNameAdType},
	{ParamOrderID, ParamNameOrderID},
	{ParamDescription, ParamNameDescription},
	{ParamQuery, ParamNameSearchString},
}

// applyStandardFields fills the standard parameters of a recognised event.
// Purchases carry their currency as an argument of their own, so
// fb_currency is left out for them.
func applyStandardFields(properties map[string]any, params Parameters, name EventName) {
	for _, f := range described {
		if v, ok := properties[f.key]; ok {
			params[f.param] = Describe(v)
		}
	}

	if rating, ok := properties[ParamRating]; ok && isNumeric(rating) {
		params[ParamNameMaxRatingValue] = rating
	}

	if name != EventOrderCompleted {
		params[ParamNameCurrency] = Currency(properties, ParamCurrency)
	}
}
