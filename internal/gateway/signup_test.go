package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/paylinkbr/paylink-core/internal/backend"
)

func TestSignupSuccessCarriesData(t *testing.T) {
	api := &stubAPI{registerResp: json.RawMessage(`{"id":"u-9"}`)}
	svc, _, _ := buildService(t, api)

	result := svc.Signup(context.Background(), SignupRequest{
		Name:            "Nova Loja",
		Email:           "loja@example.com",
		Password:        "segredo123",
		ConfirmPassword: "segredo123",
	})
	if result.Error != "" {
		t.Fatalf("unexpected error: %q", result.Error)
	}
	if string(result.Data) != `{"id":"u-9"}` {
		t.Fatalf("unexpected data: %s", result.Data)
	}
}

func TestSignupErrorClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "bad request echoes the server message",
			err:  &backend.Error{Status: 400, Message: "email já cadastrado"},
			want: "Requisição inválida: email já cadastrado",
		},
		{
			name: "unauthorized",
			err:  &backend.Error{Status: 401, Message: "token expirado"},
			want: msgUnauthorized,
		},
		{
			name: "forbidden maps with unauthorized",
			err:  &backend.Error{Status: 403},
			want: msgUnauthorized,
		},
		{
			name: "server error",
			err:  &backend.Error{Status: 500, Message: "stack trace"},
			want: msgServerError,
		},
		{
			name: "no response from the server",
			err:  fmt.Errorf("%w: %w", backend.ErrNoResponse, errors.New("dial tcp: connection refused")),
			want: "Sem resposta do servidor. Verifique sua conexão.",
		},
		{
			name: "unexpected status",
			err:  &backend.Error{Status: 418},
			want: msgUnknown,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &stubAPI{registerErr: tc.err}
			svc, _, _ := buildService(t, api)

			result := svc.Signup(context.Background(), SignupRequest{
				Name:            "Loja",
				Email:           "loja@example.com",
				Password:        "segredo123",
				ConfirmPassword: "segredo123",
			})
			if result.Error != tc.want {
				t.Fatalf("got %q, want %q", result.Error, tc.want)
			}
			if result.Data != nil {
				t.Fatalf("failed signup must not carry data")
			}
		})
	}
}

func TestSignupDoesNotReturnGoError(t *testing.T) {
	// The result is a value either way; only the Error field signals failure.
	api := &stubAPI{registerErr: &backend.Error{Status: 500}}
	svc, _, _ := buildService(t, api)

	result := svc.Signup(context.Background(), SignupRequest{
		Name:            "Loja",
		Email:           "loja@example.com",
		Password:        "segredo123",
		ConfirmPassword: "segredo123",
	})
	if result.Error == "" {
		t.Fatalf("expected a populated Error field")
	}
}
