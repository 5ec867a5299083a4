package skymap

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMap2dMetadata(t *testing.T) {
	orig, err := NewMap2dSized(2.5, 10, 50, 200, 512)
	if err != nil {
		t.Fatal(err)
	}

	data, err := MarshalMap2d(orig)
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if fields["nside"] != float64(512) {
		t.Errorf("expected encoded nside 512, got %v", fields["nside"])
	}

	decoded, err := UnmarshalMap2d(data)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(*orig, *decoded, shapeOpts); diff != "" {
		t.Errorf("decoded map mismatch (-orig +decoded):\n%s", diff)
	}
}

func TestMap3dMetadata(t *testing.T) {
	orig := NewMap3d()
	orig.NuNum = 1024
	orig.NuLower = 400
	orig.NuUpper = 800

	data, err := MarshalMap3d(orig)
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := UnmarshalMap3d(data)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(*orig, *decoded, shapeOpts); diff != "" {
		t.Errorf("decoded map mismatch (-orig +decoded):\n%s", diff)
	}
	if diff := cmp.Diff(orig.Meta(), decoded.Meta()); diff != "" {
		t.Errorf("metadata mismatch (-orig +decoded):\n%s", diff)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	testCases := []struct {
		name  string
		data  string
		is3d  bool
		check func(error) bool
	}{
		{"bad nside", `{"xWidth":5,"yWidth":5,"xNum":8,"yNum":8,"nside":100}`, false, isResolutionError},
		{"missing nside", `{"xWidth":5,"yWidth":5,"xNum":8,"yNum":8}`, false, isResolutionError},
		{"zero pixels", `{"xWidth":5,"yWidth":5,"xNum":0,"yNum":8,"nside":4}`, false, isPixelCountError},
		{"inverted band", `{"xWidth":5,"yWidth":5,"xNum":8,"yNum":8,"nuLower":900,"nuUpper":500,"nuNum":8,"nside":4}`, true, isFrequencyRangeError},
		{"no channels", `{"xWidth":5,"yWidth":5,"xNum":8,"yNum":8,"nuLower":500,"nuUpper":900,"nside":4}`, true, isPixelCountError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.is3d {
				_, err = UnmarshalMap3d([]byte(tc.data))
			} else {
				_, err = UnmarshalMap2d([]byte(tc.data))
			}
			if !tc.check(err) {
				t.Errorf("unexpected error %v", err)
			}
		})
	}

	if _, err := UnmarshalMap2d([]byte("{not json")); err == nil {
		t.Errorf("expected malformed document to fail")
	}
}
