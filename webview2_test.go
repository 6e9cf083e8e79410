package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeQuerier struct {
	values map[string]string
	errs   map[string]error

	calls []string
}

func (q *fakeQuerier) QueryVersion(_ context.Context, key string) (string, bool, error) {
	q.calls = append(q.calls, key)
	if err, ok := q.errs[key]; ok {
		return "", false, err
	}
	if v, ok := q.values[key]; ok {
		return v, true, nil
	}
	return "", false, nil
}

func TestResolveInstalledVersion(t *testing.T) {
	mechErr := errors.New("access denied")

	tests := []struct {
		testName string // description of this test case
		// Named input parameters for target function.
		values    map[string]string
		errs      map[string]error
		want      string
		wantCalls []string
		wantErr   bool
	}{
		{
			testName: "first location wins",
			values: map[string]string{
				installLocations[0].key: "100.0.1.2",
				installLocations[2].key: "99.0.0.1",
			},
			want:      "100.0.1.2",
			wantCalls: []string{installLocations[0].key},
		},
		{
			testName: "later location after clean misses",
			values: map[string]string{
				installLocations[2].key: "100.0.1.2",
			},
			want: "100.0.1.2",
			wantCalls: []string{
				installLocations[0].key,
				installLocations[1].key,
				installLocations[2].key,
			},
		},
		{
			testName: "mechanism error does not mask later location",
			values: map[string]string{
				installLocations[1].key: "100.0.1.2",
			},
			errs: map[string]error{
				installLocations[0].key: mechErr,
			},
			want: "100.0.1.2",
			wantCalls: []string{
				installLocations[0].key,
				installLocations[1].key,
			},
		},
		{
			testName: "nothing installed",
			wantCalls: []string{
				installLocations[0].key,
				installLocations[1].key,
				installLocations[2].key,
				installLocations[3].key,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.testName, func(t *testing.T) {
			querier := &fakeQuerier{values: tt.values, errs: tt.errs}
			got, gotErr := ResolveInstalledVersion(context.Background(), querier)
			if diff := cmp.Diff(tt.wantCalls, querier.calls); diff != "" {
				t.Errorf("queried keys mismatch (-want +got):\n%s", diff)
			}
			if gotErr != nil {
				if !tt.wantErr {
					t.Errorf("ResolveInstalledVersion() failed: %v", gotErr)
				}
				return
			}
			if tt.wantErr {
				t.Fatal("ResolveInstalledVersion() succeeded unexpectedly")
			}
			if got != tt.want {
				t.Errorf("ResolveInstalledVersion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveInstalledVersionNoInstall(t *testing.T) {
	querier := &fakeQuerier{}
	_, err := ResolveInstalledVersion(context.Background(), querier)
	if !errors.Is(err, ErrNoInstallFound) {
		t.Errorf("ResolveInstalledVersion() error = %v, want ErrNoInstallFound", err)
	}
}

func TestResolveInstalledVersionMechanismBroken(t *testing.T) {
	mechErr := errors.New("powershell not found")
	querier := &fakeQuerier{
		errs: map[string]error{
			installLocations[0].key: mechErr,
			installLocations[1].key: mechErr,
			installLocations[2].key: mechErr,
			installLocations[3].key: mechErr,
		},
	}
	_, err := ResolveInstalledVersion(context.Background(), querier)
	if err == nil {
		t.Fatal("ResolveInstalledVersion() succeeded unexpectedly")
	}
	if errors.Is(err, ErrNoInstallFound) {
		t.Errorf("ResolveInstalledVersion() error = %v, want a lookup error, not ErrNoInstallFound", err)
	}
	if !errors.Is(err, mechErr) {
		t.Errorf("ResolveInstalledVersion() error = %v, want wrapped mechanism error", err)
	}
}
