package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToEnvironment(t *testing.T) {
	tests := []struct {
		in        string
		want      Environment
		wantStr   string
		wantDebug bool
	}{
		{in: "local", want: LOCAL_ENV, wantStr: "local", wantDebug: true},
		{in: "DEV", want: DEV_ENV, wantStr: "dev"},
		{in: " uat ", want: UAT_ENV, wantStr: "uat"},
		{in: "prod", want: PROD_ENV, wantStr: "prod"},
		{in: "staging", want: UNDEFINED_ENV, wantStr: "UNDEFINED", wantDebug: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			env := StringToEnvironment(tt.in)
			assert.Equal(t, tt.want, env)
			assert.Equal(t, tt.wantStr, env.String())
			assert.Equal(t, tt.wantDebug, env.DebugEnabled())
		})
	}
}
