// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"math"
	"testing"
)

func TestUniformTopicVector(t *testing.T) {
	v := UniformTopicVector(4)
	if len(v) != 4 {
		t.Fatalf("len = %d, want 4", len(v))
	}
	for i, w := range v {
		if w != 0.25 {
			t.Errorf("weight[%d] = %v, want 0.25", i, w)
		}
	}
	if err := v.Validate(); err != nil {
		t.Errorf("uniform vector should validate: %v", err)
	}

	if UniformTopicVector(0) != nil {
		t.Error("UniformTopicVector(0) should be nil")
	}
}

func TestTopicVectorValidate(t *testing.T) {
	tests := []struct {
		name    string
		v       TopicVector
		wantErr bool
	}{
		{"valid", TopicVector{0.2, 0.3, 0.5}, false},
		{"empty", TopicVector{}, true},
		{"nil", nil, true},
		{"negative weight", TopicVector{1.5, -0.5}, true},
		{"nan weight", TopicVector{math.NaN(), 1}, true},
		{"sum too low", TopicVector{0.2, 0.2}, true},
		{"sum too high", TopicVector{0.8, 0.8}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%v) = %v, wantErr %v", tt.v, err, tt.wantErr)
			}
		})
	}
}

func TestTopicVectorDominant(t *testing.T) {
	tests := []struct {
		name string
		v    TopicVector
		want int
	}{
		{"clear winner", TopicVector{0.1, 0.7, 0.2}, 1},
		{"tie breaks low", TopicVector{0.4, 0.4, 0.2}, 0},
		{"uniform breaks low", TopicVector{0.5, 0.5}, 0},
		{"empty", nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Dominant(); got != tt.want {
				t.Errorf("Dominant(%v) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestTopicVectorClone(t *testing.T) {
	v := TopicVector{0.3, 0.7}
	c := v.Clone()
	c[0] = 0.9
	if v[0] != 0.3 {
		t.Error("Clone should not share backing storage")
	}
	if TopicVector(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}
