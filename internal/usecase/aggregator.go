package usecase

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"clinic-hr-backend/internal/model"
)

const (
	punchLayout = "2006-01-02 15:04:05" // machine export is civil time, no zone

	middayBoundaryMin    = 13 * 60 // 13:00, morning/afternoon split
	morningStandardMin   = 8 * 60  // 08:00 expected arrival
	afternoonStandardMin = 14 * 60 // 14:00 expected return
	nominalDayMin        = 8 * 60  // overtime counts past this

	placeholderEmailDomain = "clinic.local"
	defaultDepartment      = "Unassigned"
)

var avatarPool = []string{
	"avatars/avatar-1.png",
	"avatars/avatar-2.png",
	"avatars/avatar-3.png",
	"avatars/avatar-4.png",
	"avatars/avatar-5.png",
}

// AggregateResult is what one aggregation pass produces. Records carry one
// row per (device, date) that had at least one valid punch; NewEmployees are
// stubs for device IDs never seen before.
type AggregateResult struct {
	Records      []model.DailyAttendance
	NewEmployees []model.Employee
	ErrorCount   int
}

type validPunch struct {
	deviceID  string
	at        time.Time
	direction string
	firstName string
	lastName  string
}

type groupKey struct {
	deviceID string
	date     string
}

// Aggregate folds raw punch rows into daily attendance records. It is pure:
// no store access, no clock reads. knownIDs holds device IDs that already
// have an employee profile; anything else gets a stub queued exactly once.
func Aggregate(punches []model.RawPunch, knownIDs map[string]bool) AggregateResult {
	var res AggregateResult

	groups := make(map[groupKey][]validPunch)
	queued := make(map[string]bool)

	for _, p := range punches {
		vp, ok := parsePunch(p)
		if !ok {
			res.ErrorCount++
			continue
		}

		key := groupKey{deviceID: vp.deviceID, date: vp.at.Format("2006-01-02")}
		groups[key] = append(groups[key], vp)

		if !knownIDs[vp.deviceID] && !queued[vp.deviceID] {
			queued[vp.deviceID] = true
			res.NewEmployees = append(res.NewEmployees, newEmployeeStub(vp))
		}
	}

	// Deterministic output order so a re-run writes identical rows.
	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].deviceID != keys[j].deviceID {
			return keys[i].deviceID < keys[j].deviceID
		}
		return keys[i].date < keys[j].date
	})

	for _, k := range keys {
		res.Records = append(res.Records, reduceDay(k, groups[k]))
	}
	return res
}

// parsePunch trims and validates one raw row. A row with an empty device ID,
// the export's repeated column title, an unknown direction, or a timestamp
// that does not parse is dropped by the caller and counted as an error.
func parsePunch(p model.RawPunch) (validPunch, bool) {
	id := strings.TrimSpace(p.DeviceID)
	if id == "" || id == model.PunchHeaderLiteral {
		return validPunch{}, false
	}

	dir := strings.TrimSpace(p.Direction)
	if dir != model.DirectionIn && dir != model.DirectionOut {
		return validPunch{}, false
	}

	at, err := time.Parse(punchLayout, strings.TrimSpace(p.Timestamp))
	if err != nil {
		return validPunch{}, false
	}

	return validPunch{
		deviceID:  id,
		at:        at,
		direction: dir,
		firstName: strings.TrimSpace(p.FirstName),
		lastName:  strings.TrimSpace(p.LastName),
	}, true
}

func reduceDay(key groupKey, punches []validPunch) model.DailyAttendance {
	sort.Slice(punches, func(i, j int) bool { return punches[i].at.Before(punches[j].at) })

	var (
		worked  time.Duration
		openIn  time.Time
		hasOpen bool
		ins     []time.Time
		outs    []time.Time
	)

	for _, p := range punches {
		switch p.direction {
		case model.DirectionIn:
			ins = append(ins, p.at)
			// A second IN while one is open is duplicate-punch noise; the
			// earlier IN stays open.
			if !hasOpen {
				openIn = p.at
				hasOpen = true
			}
		case model.DirectionOut:
			outs = append(outs, p.at)
			// An OUT without an open IN pairs with nothing and is dropped.
			if hasOpen {
				worked += p.at.Sub(openIn)
				hasOpen = false
			}
		}
	}
	// An IN still open at day end contributes nothing; no carry to tomorrow.

	rec := model.DailyAttendance{
		RecordKey: key.deviceID + "-" + key.date,
		DeviceID:  key.deviceID,
		Date:      key.date,
	}

	// Period times are straight earliest/latest picks over the raw IN/OUT
	// sets; they ignore how the worked-duration scan paired things up.
	morningIn := earliestBefore(ins, middayBoundaryMin)
	rec.MorningIn = formatClock(morningIn)
	rec.MorningOut = formatClock(earliestBefore(outs, middayBoundaryMin))
	afternoonIn := earliestAtOrAfter(ins, middayBoundaryMin)
	rec.AfternoonIn = formatClock(afternoonIn)
	rec.AfternoonOut = formatClock(latestAtOrAfter(outs, middayBoundaryMin))

	rec.TotalWorkedHours = math.Round(worked.Minutes()/60*100) / 100
	rec.TotalLateMinutes = lateMinutes(morningIn, morningStandardMin) + lateMinutes(afternoonIn, afternoonStandardMin)
	rec.TotalOvertimeMinutes = clampNonNegative(roundHalfUp(worked.Minutes() - nominalDayMin))

	return rec
}

func newEmployeeStub(p validPunch) model.Employee {
	name := strings.TrimSpace(p.firstName + " " + p.lastName)
	if name == "" {
		name = p.deviceID
	}

	var frags []string
	for _, f := range []string{p.firstName, p.lastName} {
		if f != "" {
			frags = append(frags, strings.ToLower(f))
		}
	}
	local := strings.Join(frags, ".")
	if local == "" {
		local = strings.ToLower(p.deviceID)
	}

	return model.Employee{
		DeviceID:   p.deviceID,
		Name:       name,
		Email:      local + "@" + placeholderEmailDomain,
		Department: defaultDepartment,
		Avatar:     avatarPool[rand.Intn(len(avatarPool))],
		Role:       "Staff",
		IsActive:   true,
	}
}

// minuteOfDay ignores seconds so late minutes come out whole at the same
// precision the record's clock fields carry.
func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func earliestBefore(ts []time.Time, boundaryMin int) *time.Time {
	for i := range ts { // ts already ascending
		if minuteOfDay(ts[i]) < boundaryMin {
			return &ts[i]
		}
	}
	return nil
}

func earliestAtOrAfter(ts []time.Time, boundaryMin int) *time.Time {
	for i := range ts {
		if minuteOfDay(ts[i]) >= boundaryMin {
			return &ts[i]
		}
	}
	return nil
}

func latestAtOrAfter(ts []time.Time, boundaryMin int) *time.Time {
	for i := len(ts) - 1; i >= 0; i-- {
		if minuteOfDay(ts[i]) >= boundaryMin {
			return &ts[i]
		}
	}
	return nil
}

func formatClock(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("15:04")
}

// lateMinutes is the whole-minute delay past the standard, never negative.
// Early arrivals and missing punches contribute zero.
func lateMinutes(arrival *time.Time, standardMin int) int {
	if arrival == nil {
		return 0
	}
	return clampNonNegative(minuteOfDay(*arrival) - standardMin)
}

// roundHalfUp is the single rounding policy for every minute figure.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
