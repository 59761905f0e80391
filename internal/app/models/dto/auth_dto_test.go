package dto

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

// bindingValidator mirrors gin's binding setup so the struct tags are
// checked the way the handlers check them.
func bindingValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func TestUpdateNameRequestBinding(t *testing.T) {
	v := bindingValidator()

	tests := []struct {
		name    string
		req     UpdateNameRequest
		wantErr bool
	}{
		{name: "valid name", req: UpdateNameRequest{Name: "Ada Lovelace"}, wantErr: false},
		{name: "minimum length", req: UpdateNameRequest{Name: "Al"}, wantErr: false},
		{name: "empty name", req: UpdateNameRequest{Name: ""}, wantErr: true},
		{name: "too short", req: UpdateNameRequest{Name: "A"}, wantErr: true},
		{name: "too long", req: UpdateNameRequest{Name: strings.Repeat("a", 101)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterRequestBinding(t *testing.T) {
	v := bindingValidator()

	valid := RegisterRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "s3cretpass",
		Role:     "mentee",
	}

	tests := []struct {
		name    string
		mutate  func(r *RegisterRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *RegisterRequest) {}, wantErr: false},
		{name: "mentor role", mutate: func(r *RegisterRequest) { r.Role = "mentor" }, wantErr: false},
		{name: "unknown role", mutate: func(r *RegisterRequest) { r.Role = "admin" }, wantErr: true},
		{name: "bad email", mutate: func(r *RegisterRequest) { r.Email = "not-an-email" }, wantErr: true},
		{name: "short password", mutate: func(r *RegisterRequest) { r.Password = "short" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := v.Struct(req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
