package albedo

import "testing"

func TestIsLocalEndpoint(t *testing.T) {
	tests := []struct {
		endpoint string
		want     bool
	}{
		{endpoint: "", want: false},
		{endpoint: "https://api.openai.com/v1", want: false},
		{endpoint: "http://localhost:8080/v1", want: true},
		{endpoint: "http://LOCALHOST:11434/v1", want: true},
		{endpoint: "http://127.0.0.1:1234/v1", want: true},
		{endpoint: "http://0.0.0.0:8000", want: true},
		{endpoint: "http://192.168.1.50:11434/v1", want: true},
		{endpoint: "http://10.0.0.5:8080", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			if got := IsLocalEndpoint(tt.endpoint); got != tt.want {
				t.Errorf("IsLocalEndpoint(%q) = %v, want %v", tt.endpoint, got, tt.want)
			}
		})
	}
}

func TestIsHTTPURL(t *testing.T) {
	tests := []struct {
		ref  string
		want bool
	}{
		{ref: "http://example.com/image.png", want: true},
		{ref: "https://example.com/image.png", want: true},
		{ref: "HTTPS://EXAMPLE.COM/IMAGE.PNG", want: true},
		{ref: "ftp://example.com/image.png", want: false},
		{ref: "/tmp/image.png", want: false},
		{ref: "image.png", want: false},
		{ref: "data:image/png;base64,AAAA", want: false},
		{ref: "", want: false},
	}

	for _, tt := range tests {
		if got := IsHTTPURL(tt.ref); got != tt.want {
			t.Errorf("IsHTTPURL(%q) = %v, want %v", tt.ref, got, tt.want)
		}
	}
}
