package facebook

import "errors"

type userDataCall struct {
	value string
	field UserDataType
}

type logEventCall struct {
	name       EventName
	valueToSum *float64
	params     Parameters
}

type logPurchaseCall struct {
	amount   float64
	currency string
	params   Parameters
}

// recordingEvents records every App Events call.
type recordingEvents struct {
	userID           string
	clearCalled      bool
	setUserDataCalls []userDataCall
	logEventCalls    []logEventCall
	logPurchaseCalls []logPurchaseCall
}

func (r *recordingEvents) SetUserID(userID string) { r.userID = userID }

func (r *recordingEvents) SetUserData(value string, field UserDataType) {
	r.setUserDataCalls = append(r.setUserDataCalls, userDataCall{value: value, field: field})
}

func (r *recordingEvents) ClearUserData() { r.clearCalled = true }

func (r *recordingEvents) LogEvent(name EventName, params Parameters) {
	r.logEventCalls = append(r.logEventCalls, logEventCall{name: name, params: params})
}

func (r *recordingEvents) LogEventWithValue(name EventName, valueToSum float64, params Parameters) {
	r.logEventCalls = append(r.logEventCalls, logEventCall{name: name, valueToSum: &valueToSum, params: params})
}

func (r *recordingEvents) LogPurchase(amount float64, currency string, params Parameters) {
	r.logPurchaseCalls = append(r.logPurchaseCalls, logPurchaseCall{amount: amount, currency: currency, params: params})
}

func (r *recordingEvents) Instance() any { return "MockAppEventsInstance" }

type optionsCall struct {
	options []string
	country *int32
	state   *int32
}

// recordingSettings records data processing options; failWith makes every
// call fail.
type recordingSettings struct {
	calls    []optionsCall
	failWith error
}

func (r *recordingSettings) SetDataProcessingOptions(options []string) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.calls = append(r.calls, optionsCall{options: options})
	return nil
}

func (r *recordingSettings) SetDataProcessingOptionsForRegion(options []string, country, state int32) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.calls = append(r.calls, optionsCall{options: options, country: &country, state: &state})
	return nil
}

var errSettings = errors.New("settings unavailable")

func newTestIntegration() (*Integration, *recordingEvents, *recordingSettings) {
	events := &recordingEvents{}
	settings := &recordingSettings{}
	return New(events, settings), events, settings
}
