package rules

import (
	"testing"

	"github.com/rowanmc/mccore/internal/platform"
)

func linux() platform.Platform {
	return platform.Platform{Name: platform.Linux, Version: "6.1.0", Arch: "x64"}
}

func TestEvaluateEmptyAllows(t *testing.T) {
	if !Evaluate(nil, linux(), nil) {
		t.Error("empty rule list should allow")
	}
}

func TestEvaluateSingleAllowNoConstraints(t *testing.T) {
	rs := []Rule{{Action: Allow}}
	if !Evaluate(rs, linux(), nil) {
		t.Error("unconstrained allow rule should allow")
	}
}

func TestEvaluateSingleDisallowNoConstraints(t *testing.T) {
	rs := []Rule{{Action: Disallow}}
	if Evaluate(rs, linux(), nil) {
		t.Error("unconstrained disallow rule should disallow")
	}
}

func TestEvaluateLastApplicableWins(t *testing.T) {
	rs := []Rule{
		{Action: Allow},
		{Action: Disallow, OS: &OS{Name: "linux"}},
	}
	if Evaluate(rs, linux(), nil) {
		t.Error("later applicable disallow should override earlier allow")
	}
}

func TestEvaluateOSNameMismatchSkipped(t *testing.T) {
	rs := []Rule{
		{Action: Allow},
		{Action: Disallow, OS: &OS{Name: "windows"}},
	}
	if !Evaluate(rs, linux(), nil) {
		t.Error("rule for a different OS should not apply")
	}
}

func TestEvaluateOSVersionRegex(t *testing.T) {
	rs := []Rule{
		{Action: Allow},
		{Action: Disallow, OS: &OS{Name: "windows", Version: "^10\\."}},
	}
	win10 := platform.Platform{Name: platform.Windows, Version: "10.0.19045", Arch: "x64"}
	if Evaluate(rs, win10, nil) {
		t.Error("matching version regex should make the rule apply")
	}

	win7 := platform.Platform{Name: platform.Windows, Version: "6.1.7601", Arch: "x64"}
	if !Evaluate(rs, win7, nil) {
		t.Error("non-matching version regex should not apply, leaving the earlier allow")
	}
}

func TestEvaluateFeatures(t *testing.T) {
	rs := []Rule{
		{Action: Disallow},
		{Action: Allow, Features: map[string]bool{"is_demo_user": true}},
	}
	if !Evaluate(rs, linux(), FeatureSet{"is_demo_user": true}) {
		t.Error("feature present should satisfy required=true")
	}
	if Evaluate(rs, linux(), FeatureSet{}) {
		t.Error("feature absent should not satisfy required=true")
	}
}

func TestEvaluateFeatureRequiredAbsent(t *testing.T) {
	rs := []Rule{
		{Action: Disallow},
		{Action: Allow, Features: map[string]bool{"has_custom_resolution": false}},
	}
	if !Evaluate(rs, linux(), FeatureSet{}) {
		t.Error("required=false should be satisfied when feature is absent")
	}
	if Evaluate(rs, linux(), FeatureSet{"has_custom_resolution": true}) {
		t.Error("required=false should not be satisfied when feature is present")
	}
}
