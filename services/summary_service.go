package services

import "time"

type SummaryService struct {
	jumps *JumpService
}

func NewSummaryService(jumps *JumpService) *SummaryService {
	return &SummaryService{jumps: jumps}
}

type JumpPoint struct {
	Height float64 `json:"height"`
	Date   string  `json:"date"`
}

type Improvement struct {
	SixMonths        *float64 `json:"6-months"`
	TwelveMonths     *float64 `json:"12-months"`
	TwentyFourMonths *float64 `json:"24-months"`
}

type Summary struct {
	NumRecords  int         `json:"num-records"`
	NumDays     int         `json:"num-days"`
	HighestJump *JumpPoint  `json:"highest-jump"`
	LastJump    *JumpPoint  `json:"last-jump"`
	Improvement Improvement `json:"improvement"`
}

// Summary builds the user's progress overview. Heights are scaled by
// factor, the caller's height-unit conversion. An empty history yields zero
// counts and null jump/improvement fields rather than an error.
func (s *SummaryService) Summary(userID uint, factor float64) (*Summary, error) {
	all, err := s.jumps.Query(JumpQuery{UserID: userID, OrderBy: OrderDate})
	if err != nil {
		return nil, err
	}

	out := &Summary{NumRecords: len(all)}

	days := make(map[string]struct{})
	for _, smp := range all {
		days[dayKey(smp.Timestamp)] = struct{}{}
	}
	out.NumDays = len(days)

	if len(all) == 0 {
		return out, nil
	}

	byHeight, err := s.jumps.Query(JumpQuery{UserID: userID, OrderBy: OrderHeight})
	if err != nil {
		return nil, err
	}
	highest := byHeight[len(byHeight)-1]
	out.HighestJump = &JumpPoint{Height: highest.Height * factor, Date: dayKey(highest.Timestamp)}

	daily, err := s.jumps.Query(JumpQuery{UserID: userID, OrderBy: OrderDate, Agg: AggMax})
	if err != nil {
		return nil, err
	}
	last := daily[len(daily)-1]
	out.LastJump = &JumpPoint{Height: last.Height * factor, Date: dayKey(last.Timestamp)}

	now := time.Now().UTC()
	out.Improvement = Improvement{
		SixMonths:        improvementFrom(daily, now.AddDate(0, -6, 0), factor),
		TwelveMonths:     improvementFrom(daily, now.AddDate(0, -12, 0), factor),
		TwentyFourMonths: improvementFrom(daily, now.AddDate(0, -24, 0), factor),
	}
	return out, nil
}

// ImprovementOverMonths reports the change in best daily jump height over a
// trailing window of whole months, scaled by factor. Nil means not
// computable: fewer than two daily samples, or none inside the window.
func (s *SummaryService) ImprovementOverMonths(userID uint, months int, factor float64) (*float64, error) {
	daily, err := s.jumps.Query(JumpQuery{UserID: userID, OrderBy: OrderDate, Agg: AggMax})
	if err != nil {
		return nil, err
	}
	return improvementFrom(daily, time.Now().UTC().AddDate(0, -months, 0), factor), nil
}

// improvementFrom scans the date-ascending daily-max samples for the first
// one strictly inside the window (timestamp > cutoff). The baseline is the
// sample immediately before it, or that first sample itself when the window
// covers the whole sequence. Result is last minus baseline, scaled; it can
// be zero or negative.
func improvementFrom(daily []JumpSample, cutoff time.Time, factor float64) *float64 {
	if len(daily) < 2 {
		return nil
	}

	baseline := -1
	for i, smp := range daily {
		if smp.Timestamp.After(cutoff) {
			if i == 0 {
				baseline = 0
			} else {
				baseline = i - 1
			}
			break
		}
	}
	if baseline == -1 {
		return nil
	}

	v := (daily[len(daily)-1].Height - daily[baseline].Height) * factor
	return &v
}
