package auth_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/pahiram/pkg/authsdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helpers for the auth service end-to-end tests: the
 * container under test, a fake APCIS running on the host and assertions.
 */

const (
	testImageName = "pahiram-auth-test:latest"

	validPassword = "correct-horse"
	apcisLayout   = "2006-01-02 15:04:05"
)

// TestMain builds the Docker image once before all tests and removes it
// afterwards.
func TestMain(m *testing.M) {
	fmt.Fprintf(os.Stdout, "Building Auth Service Docker image...")

	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up Auth Service Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/auth/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run()
}

// fakeAPCIS stands in for the APCIS login API. Accounts log in with
// validPassword; anything else is denied the way APCIS denies it.
type fakeAPCIS struct {
	*httptest.Server

	mu        sync.Mutex
	expiresAt string
	delay     time.Duration
}

func newFakeAPCIS(t *testing.T) *fakeAPCIS {
	t.Helper()

	f := &fakeAPCIS{
		expiresAt: time.Now().UTC().Add(4 * time.Hour).Format(apcisLayout),
	}

	// Listen on all interfaces so the container reaches it through the
	// testcontainers host tunnel.
	ln, err := net.Listen("tcp", "0.0.0.0:0")
	require.NoError(t, err)

	f.Server = httptest.NewUnstartedServer(http.HandlerFunc(f.handle))
	f.Server.Listener = ln
	f.Server.Start()
	t.Cleanup(f.Close)

	return f
}

func (f *fakeAPCIS) port() int {
	return f.Listener.Addr().(*net.TCPAddr).Port
}

func (f *fakeAPCIS) setExpiresAt(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expiresAt = v
}

func (f *fakeAPCIS) setDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

func (f *fakeAPCIS) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	expiresAt, delay := f.expiresAt, f.delay
	f.mu.Unlock()

	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
			return
		}
	}

	var creds struct {
		APCID    string `json:"apc_id"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if creds.Password != validPassword {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(deniedBody))
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": true,
		"data": map[string]any{
			"user": map[string]any{
				"apc_id":     creds.APCID,
				"first_name": "Maria",
				"last_name":  "Santos",
				"email":      "msantos@student.apc.edu.ph",
			},
			"course": map[string]any{
				"course_acronym": "BSIT",
				"course":         "BS Information Technology",
			},
			"apcis_token": map[string]any{
				"access_token": "apcis-access-" + creds.APCID,
				"expires_at":   expiresAt,
			},
		},
	})
}

const deniedBody = `{"status":false,"message":"Invalid APC ID or password"}`

type containerOptions struct {
	apcisTimeout     string
	defaultRateLimit bool
}

// setupAuthContainer starts the auth service wired to apcis and returns its
// base URL.
func setupAuthContainer(t *testing.T, apcis *fakeAPCIS, opts containerOptions) string {
	t.Helper()
	ctx := context.Background()

	env := map[string]string{
		"AUTH_DATABASE_FILE": "/data/pahiram.db",
		"APCIS_LOGIN_URL":    fmt.Sprintf("http://%s:%d/api/login", testcontainers.HostInternal, apcis.port()),
		"ENV":                "test",
		"LOG_LEVEL":          "info",
		"LOG_FORMAT":         "json",
	}
	if opts.apcisTimeout != "" {
		env["APCIS_TIMEOUT"] = opts.apcisTimeout
	}
	if !opts.defaultRateLimit {
		// Tests fire many requests from one address.
		env["RATELIMIT_STRICT_REQUESTS"] = "1000"
		env["RATELIMIT_STRICT_BURST"] = "1000"
		env["RATELIMIT_MODERATE_REQUESTS"] = "1000"
		env["RATELIMIT_MODERATE_BURST"] = "1000"
	}

	req := testcontainers.ContainerRequest{
		Image:           testImageName,
		ExposedPorts:    []string{"8080/tcp"},
		HostAccessPorts: []int{apcis.port()},
		Env:             env,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return "http://" + net.JoinHostPort(host, strconv.Itoa(mappedPort.Int()))
}

// login performs a successful login and returns the session.
func login(t *testing.T, client *authsdk.SDKClient, apcID string) (*authsdk.Session, *authsdk.LoginResponse) {
	t.Helper()

	session, resp, err := client.AuthenticateWithPassword(t.Context(), apcID, validPassword)
	require.NoError(t, err, "login should succeed")
	require.True(t, resp.Status)
	require.NotEmpty(t, resp.Data.PahiramToken)

	return session, resp
}

// assertStatus checks err is an *authsdk.APIError with the given status.
func assertStatus(t *testing.T, err error, status int) *authsdk.APIError {
	t.Helper()

	var apiErr *authsdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode, "body: %s", apiErr.Body)
	return apiErr
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *authsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
