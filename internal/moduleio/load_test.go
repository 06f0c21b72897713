package moduleio

import (
	"bytes"
	"testing"

	"github.com/charlie-sans/ObjectRuntime/internal/hostlib"
	"github.com/charlie-sans/ObjectRuntime/internal/vmcore"
)

const helloModuleJSON = `{
	"name": "Hello",
	"version": "1",
	"classes": [
		{
			"name": "Program",
			"methods": [
				{
					"name": "Main",
					"returnType": "void",
					"static": true,
					"instructions": [
						{"op": "ldstr", "str": "Hello from Text IR!"},
						{
							"op": "call",
							"method": {
								"declaringType": "System.Console",
								"name": "WriteLine",
								"returnType": "void",
								"parameterTypes": ["string"]
							}
						},
						{"op": "ret"}
					]
				}
			]
		}
	]
}`

func TestDecodeHelloScenario(t *testing.T) {
	mod, err := Decode([]byte(helloModuleJSON))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var out bytes.Buffer
	interp := vmcore.New(mod, &out, 0)
	hostlib.RegisterAll(interp.Registry, interp.Statics, &out)

	if _, err := interp.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got := out.String(); got != "Hello from Text IR!\n" {
		t.Errorf("output = %q", got)
	}
}

func TestDecodeUnrecognizedOpcode(t *testing.T) {
	_, err := Decode([]byte(`{
		"name": "Bad", "version": "1",
		"classes": [{"name": "Program", "methods": [{"name": "Main", "returnType": "void", "static": true,
			"instructions": [{"op": "frobnicate"}]
		}]}]
	}`))
	if err == nil {
		t.Fatal("expected an error for an unrecognized opcode")
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	if _, err := Decode([]byte("not json")); err == nil {
		t.Fatal("expected a JSON parse error")
	}
}
