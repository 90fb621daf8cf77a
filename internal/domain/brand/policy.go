package brand

import (
	vo "github.com/kolhub/kolhub/internal/domain/brand/valueobjects"
)

// DefaultRenewalDays is used when a renewal does not name a duration.
const DefaultRenewalDays = 365

type planDuration struct {
	trialDays int
	paidDays  int
}

var planDurations = map[vo.PlanType]planDuration{
	vo.PlanTypeFree:         {trialDays: 30, paidDays: 30},
	vo.PlanTypePersonal:     {trialDays: 30, paidDays: 365},
	vo.PlanTypeProfessional: {trialDays: 365, paidDays: 365},
	vo.PlanTypeEnterprise:   {trialDays: 365, paidDays: 365},
}

// PlanDurationDays returns the length of a fresh subscription period.
// Unknown plans get the trial length of FREE.
func PlanDurationDays(planType vo.PlanType, isPaid bool) int {
	d, ok := planDurations[planType]
	if !ok {
		d = planDurations[vo.PlanTypeFree]
	}
	if isPaid {
		return d.paidDays
	}
	return d.trialDays
}

// ReminderPolicy holds the reminder windows, all in whole days.
type ReminderPolicy struct {
	TrialWindowDays          int
	PaidDailyWindowDays      int
	PaidPeriodicWindowDays   int
	PaidPeriodicThrottleDays int
}

var reminderPolicy = ReminderPolicy{
	TrialWindowDays:          5,
	PaidDailyWindowDays:      3,
	PaidPeriodicWindowDays:   30,
	PaidPeriodicThrottleDays: 5,
}

// Reminders returns the reminder policy. The result is a value copy.
func Reminders() ReminderPolicy {
	return reminderPolicy
}

// ReminderHorizonDays is the widest window in which any brand can be
// reminded. Brands expiring later than this never need a reminder.
func ReminderHorizonDays() int {
	return max(reminderPolicy.TrialWindowDays, reminderPolicy.PaidPeriodicWindowDays)
}
