package facebook

// EventName is an App Events event name. Standard names carry the SDK's raw
// values; custom names are passed through as-is.
type EventName string

// Standard App Events names.
const (
	EventSearched              EventName = "fb_mobile_search"
	EventViewedContent         EventName = "fb_mobile_content_view"
	EventAddedToCart           EventName = "fb_mobile_add_to_cart"
	EventAddedToWishlist       EventName = "fb_mobile_add_to_wishlist"
	EventAddedPaymentInfo      EventName = "fb_mobile_add_payment_info"
	EventInitiatedCheckout     EventName = "fb_mobile_initiated_checkout"
	EventCompletedRegistration EventName = "fb_mobile_complete_registration"
	EventAchievedLevel         EventName = "fb_mobile_level_achieved"
	EventCompletedTutorial     EventName = "fb_mobile_tutorial_completion"
	EventUnlockedAchievement   EventName = "fb_mobile_achievement_unlocked"
	EventSubscribe             EventName = "Subscribe"
	EventStartTrial            EventName = "StartTrial"
	EventAdClick               EventName = "AdClick"
	EventAdImpression          EventName = "AdImpression"
	EventSpentCredits          EventName = "fb_mobile_spent_credits"
	EventRated                 EventName = "fb_mobile_rate"

	// EventPurchased is the name App Events logs purchases under.
	EventPurchased EventName = "fb_mobile_purchase"

	// EventOrderCompleted is kept under its input name. With revenue it is
	// logged as a purchase, without it as a plain event.
	EventOrderCompleted EventName = "Order Completed"
)

// Host-side ecommerce event names.
const (
	ProductsSearched       = "Products Searched"
	ProductViewed          = "Product Viewed"
	ProductAdded           = "Product Added"
	ProductAddedToWishlist = "Product Added to Wishlist"
	PaymentInfoEntered     = "Payment Info Entered"
	CheckoutStarted        = "Checkout Started"
	PromotionClicked       = "Promotion Clicked"
	PromotionViewed        = "Promotion Viewed"
	ProductReviewed        = "Product Reviewed"
	OrderCompleted         = "Order Completed"
)

var eventNames = map[string]EventName{
	ProductsSearched:        EventSearched,
	ProductViewed:           EventViewedContent,
	ProductAdded:            EventAddedToCart,
	ProductAddedToWishlist:  EventAddedToWishlist,
	PaymentInfoEntered:      EventAddedPaymentInfo,
	CheckoutStarted:         EventInitiatedCheckout,
	"Complete Registration": EventCompletedRegistration,
	"Achieve Level":         EventAchievedLevel,
	"Complete Tutorial":     EventCompletedTutorial,
	"Unlock Achievement":    EventUnlockedAchievement,
	"Subscribe":             EventSubscribe,
	"Start Trial":           EventStartTrial,
	PromotionClicked:        EventAdClick,
	PromotionViewed:         EventAdImpression,
	"Spend Credits":         EventSpentCredits,
	ProductReviewed:         EventRated,
	OrderCompleted:          EventOrderCompleted,
}

// ResolveEventName maps a host event name to its App Events name. Names
// outside the table are custom events and come back unchanged.
func ResolveEventName(event string) EventName {
	if name, ok := eventNames[event]; ok {
		return name
	}
	return EventName(event)
}

// valuePolicy decides what a resolved event carries besides its parameters.
type valuePolicy int

const (
	// policyCustom skips standard fields entirely.
	policyCustom valuePolicy = iota
	policyStandard
	policyPrice
	policyValue
	policyPurchase
)

var valuePolicies = map[EventName]valuePolicy{
	EventAddedToCart:           policyPrice,
	EventAddedToWishlist:       policyPrice,
	EventViewedContent:         policyPrice,
	EventInitiatedCheckout:     policyValue,
	EventSpentCredits:          policyValue,
	EventOrderCompleted:        policyPurchase,
	EventSearched:              policyStandard,
	EventAddedPaymentInfo:      policyStandard,
	EventCompletedRegistration: policyStandard,
	EventAchievedLevel:         policyStandard,
	EventCompletedTutorial:     policyStandard,
	EventUnlockedAchievement:   policyStandard,
	EventSubscribe:             policyStandard,
	EventStartTrial:            policyStandard,
	EventAdClick:               policyStandard,
	EventAdImpression:          policyStandard,
	EventRated:                 policyStandard,
}

func policyFor(name EventName) valuePolicy {
	return valuePolicies[name]
}

// valueKey is the property holding the amount for price, value and
// purchase policies.
func (p valuePolicy) valueKey() string {
	switch p {
	case policyPrice:
		return ParamPrice
	case policyValue:
		return ParamValue
	case policyPurchase:
		return ParamRevenue
	}
	return ""
}
