package domain

import (
	interfaces "solarenroll/internal/domain/interfaces"
	types "solarenroll/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Utility                   = types.Utility
	AssistanceProgram         = types.AssistanceProgram
	SubscriberID              = types.SubscriberID
	EnrollmentRecord          = types.EnrollmentRecord
	AddressValidationRequest  = types.AddressValidationRequest
	AddressValidationResponse = types.AddressValidationResponse
	Coordinates               = types.Coordinates
	UtilityInfo               = types.UtilityInfo
	SubscriberData            = types.SubscriberData
	Subscriber                = types.Subscriber
	SubscriberCreateResponse  = types.SubscriberCreateResponse
	SubscriberList            = types.SubscriberList
	SubscriberPatch           = types.SubscriberPatch
	HealthStatus              = types.HealthStatus
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	EnrollmentAPI  = interfaces.EnrollmentAPI
	AddressChecker = interfaces.AddressChecker
)

// Re-exported constants.
const (
	UtilityNone     = types.UtilityNone
	UtilityPSEG     = types.UtilityPSEG
	UtilityJCPL     = types.UtilityJCPL
	UtilityACE      = types.UtilityACE
	UtilityRockland = types.UtilityRockland

	AssistanceNone     = types.AssistanceNone
	AssistanceMedicare = types.AssistanceMedicare
	AssistanceSNAP     = types.AssistanceSNAP

	DefaultState = types.DefaultState
)

// NewEnrollmentRecord returns a record with all fields at their defaults.
func NewEnrollmentRecord() EnrollmentRecord { return types.NewEnrollmentRecord() }
