package alerting

import (
	"testing"
	"time"

	"github.com/glucokit/glucokit/internal/domain"
)

var evalTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func iobResult(total float64) domain.IOBResult {
	return domain.IOBResult{TotalIOB: total, EvaluatedAt: evalTime}
}

func bolusAt(minutesAgo int) domain.InsulinDose {
	return domain.InsulinDose{
		Amount:    2,
		Class:     domain.ClassRapid,
		Timestamp: evalTime.Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func reading(value int) *domain.GlucoseReading {
	return &domain.GlucoseReading{Value: value, Timestamp: evalTime}
}

func kinds(alerts []domain.Alert) []domain.AlertKind {
	out := make([]domain.AlertKind, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, a.Kind)
	}
	return out
}

func TestClassifyRisk_IOBBands(t *testing.T) {
	tests := []struct {
		name     string
		iob      float64
		expected []domain.AlertKind
	}{
		{"zero IOB", 0, nil},
		{"below moderate band", 2.9, nil},
		{"moderate band lower edge", 3.0, []domain.AlertKind{domain.AlertModerateIOB}},
		{"inside moderate band", 4.5, []domain.AlertKind{domain.AlertModerateIOB}},
		{"high band lower edge", 5.0, []domain.AlertKind{domain.AlertHighIOB}},
		{"above high band", 5.2, []domain.AlertKind{domain.AlertHighIOB}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := ClassifyRisk(iobResult(tt.iob), nil, nil, evalTime)
			got := kinds(alerts)
			if len(got) != len(tt.expected) {
				t.Fatalf("ClassifyRisk() kinds = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("ClassifyRisk() kinds = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestClassifyRisk_HighIOBAlertFields(t *testing.T) {
	alerts := ClassifyRisk(iobResult(5.2), nil, nil, evalTime)
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(alerts))
	}

	a := alerts[0]
	if a.Kind != domain.AlertHighIOB {
		t.Errorf("Kind = %s, want %s", a.Kind, domain.AlertHighIOB)
	}
	if a.Severity != domain.SeverityHigh {
		t.Errorf("Severity = %s, want %s", a.Severity, domain.SeverityHigh)
	}
	if a.RelatedIOB != 5.2 {
		t.Errorf("RelatedIOB = %v, want 5.2", a.RelatedIOB)
	}
	if a.ID == "" {
		t.Error("alert ID should not be empty")
	}
	if a.Message == "" {
		t.Error("alert message should not be empty")
	}
}

func TestClassifyRisk_Stacking(t *testing.T) {
	tests := []struct {
		name   string
		doses  []domain.InsulinDose
		expect bool
	}{
		{"two recent boluses", []domain.InsulinDose{bolusAt(10), bolusAt(50)}, false},
		{"three recent boluses", []domain.InsulinDose{bolusAt(10), bolusAt(50), bolusAt(110)}, true},
		{
			"third bolus outside window",
			[]domain.InsulinDose{bolusAt(10), bolusAt(50), bolusAt(130)},
			false,
		},
		{
			"basal doses never count",
			[]domain.InsulinDose{
				bolusAt(10), bolusAt(50),
				{Amount: 20, Class: domain.ClassLong, Timestamp: evalTime.Add(-5 * time.Minute)},
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alerts := ClassifyRisk(iobResult(1.0), tt.doses, nil, evalTime)
			found := false
			for _, a := range alerts {
				if a.Kind == domain.AlertStacking {
					found = true
					if a.Severity != domain.SeverityMedium {
						t.Errorf("stacking severity = %s, want %s", a.Severity, domain.SeverityMedium)
					}
				}
			}
			if found != tt.expect {
				t.Errorf("stacking fired = %v, want %v", found, tt.expect)
			}
		})
	}
}

func TestClassifyRisk_LowGlucoseWithIOB(t *testing.T) {
	alerts := ClassifyRisk(iobResult(1.0), nil, reading(65), evalTime)
	if len(alerts) != 1 {
		t.Fatalf("len(alerts) = %d, want 1", len(alerts))
	}

	a := alerts[0]
	if a.Kind != domain.AlertLowGlucoseWithIOB {
		t.Errorf("Kind = %s, want %s", a.Kind, domain.AlertLowGlucoseWithIOB)
	}
	if a.Severity != domain.SeverityCritical {
		t.Errorf("Severity = %s, want %s", a.Severity, domain.SeverityCritical)
	}
	if a.Glucose != 65 {
		t.Errorf("Glucose = %d, want 65", a.Glucose)
	}
	if a.RelatedIOB != 1.0 {
		t.Errorf("RelatedIOB = %v, want 1.0", a.RelatedIOB)
	}
}

func TestClassifyRisk_LowGlucoseRequiresIOB(t *testing.T) {
	if alerts := ClassifyRisk(iobResult(0), nil, reading(65), evalTime); len(alerts) != 0 {
		t.Errorf("hypo rule fired with zero IOB: %v", kinds(alerts))
	}
}

func TestClassifyRisk_MissingGlucoseSkipsHypoRule(t *testing.T) {
	alerts := ClassifyRisk(iobResult(1.0), nil, nil, evalTime)
	if len(alerts) != 0 {
		t.Errorf("expected no alerts without glucose reading, got %v", kinds(alerts))
	}
}

func TestClassifyRisk_RulesCoOccur(t *testing.T) {
	doses := []domain.InsulinDose{bolusAt(10), bolusAt(40), bolusAt(70)}
	alerts := ClassifyRisk(iobResult(6.0), doses, reading(62), evalTime)

	want := map[domain.AlertKind]bool{
		domain.AlertHighIOB:           true,
		domain.AlertStacking:          true,
		domain.AlertLowGlucoseWithIOB: true,
	}
	if len(alerts) != len(want) {
		t.Fatalf("len(alerts) = %d, want %d (%v)", len(alerts), len(want), kinds(alerts))
	}
	for _, a := range alerts {
		if !want[a.Kind] {
			t.Errorf("unexpected alert kind %s", a.Kind)
		}
		if a.Kind == domain.AlertModerateIOB {
			t.Error("moderate and high IOB bands must be mutually exclusive")
		}
	}
}

func TestClassifyRisk_Deterministic(t *testing.T) {
	doses := []domain.InsulinDose{bolusAt(10), bolusAt(40), bolusAt(70)}

	first := ClassifyRisk(iobResult(4.0), doses, reading(65), evalTime)
	second := ClassifyRisk(iobResult(4.0), doses, reading(65), evalTime)

	if len(first) != len(second) {
		t.Fatalf("alert counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind || first[i].Severity != second[i].Severity ||
			first[i].Message != second[i].Message {
			t.Errorf("classification differs at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
