package errdomain_test

import (
	"encoding/json"
	"testing"

	"github.com/jmgilman/go/errdomain"
	platform "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestError_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(errdomain.FromTag(0xDEADBEEF, -1))
	require.NoError(t, err)
	require.JSONEq(t, `"DEADBEEF: FFFFFFFF"`, string(data))
}

func TestError_UnmarshalJSON(t *testing.T) {
	var got struct {
		Err errdomain.Error `json:"err"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"err":"DEADBEEF: 00000010"}`), &got))
	require.Equal(t, errdomain.FromTag(0xDEADBEEF, 16), got.Err)
}

func TestError_UnmarshalText_Invalid(t *testing.T) {
	var e errdomain.Error
	err := e.UnmarshalText([]byte("DEADBEEF: 00000010 (16)"))

	require.Error(t, err)
	require.Equal(t, platform.CodeInvalidInput, platform.GetCode(err))
	require.Contains(t, err.Error(), "invalid packed error")
	require.Equal(t, errdomain.Error{}, e, "receiver is untouched on failure")
}

func TestError_YAMLRoundTrip(t *testing.T) {
	type record struct {
		Err errdomain.Error `yaml:"err"`
	}
	in := record{Err: errdomain.System(13)}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)
	require.Contains(t, string(data), "FFFFFFFE: 0000000D")

	var out record
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Equal(t, in, out)
}

func TestDescribe(t *testing.T) {
	d := errdomain.NewDomain[errc]("json_test.describe")
	e := d.Error(errcUnknown)

	resp := errdomain.Describe(e)
	require.Equal(t, d.Tag().Hex(), resp.Type)
	require.Equal(t, int32(1), resp.Code)
	require.Equal(t, d.Tag().Hex(), resp.Name)
	require.Equal(t, "00000001 (1)", resp.Message)

	require.True(t, d.Register(errdomain.NewCategory("core", coreMessages)))
	resp = errdomain.Describe(e)
	require.Equal(t, "core", resp.Name)
	require.Equal(t, "unknown", resp.Message)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"`+d.Tag().Hex()+`","code":1,"name":"core","message":"unknown"}`, string(data))
}
