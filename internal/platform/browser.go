package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/ytget/cuisine-explorer/internal/logger"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	RundllCommand  = "rundll32"
	AndroidCommand = "am"
)

// Command parameters
const (
	URLProtocolHandler = "url.dll,FileProtocolHandler"
	AndroidView        = "android.intent.action.VIEW"
)

// ValidateLink checks that link is an absolute http(s) URL
func ValidateLink(link string) (*url.URL, error) {
	link = strings.TrimSpace(link)
	if link == "" {
		return nil, fmt.Errorf("link is empty")
	}

	u, err := url.Parse(link)
	if err != nil {
		return nil, fmt.Errorf("failed to parse link: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported link scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("link has no host: %s", link)
	}
	return u, nil
}

// BrowserCommand returns the command that opens link on goos
func BrowserCommand(goos, link string) (string, []string, error) {
	switch goos {
	case OSDarwin:
		return OpenCommand, []string{link}, nil
	case OSWindows:
		// no shell in between, so & and | in the link stay literal
		return RundllCommand, []string{URLProtocolHandler, link}, nil
	case OSLinux:
		return XDGOpenCommand, []string{link}, nil
	case OSAndroid:
		return AndroidCommand, []string{"start", "-a", AndroidView, "-d", link}, nil
	default:
		return "", nil, fmt.Errorf("unsupported operating system: %s", goos)
	}
}

// OpenURL opens link in the system browser without waiting for it to exit
func OpenURL(link string) error {
	u, err := ValidateLink(link)
	if err != nil {
		return err
	}

	name, args, err := BrowserCommand(runtime.GOOS, u.String())
	if err != nil {
		return err
	}

	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	logger.Debug("opened link", zap.String("url", u.String()), zap.String("command", name))

	// reap the child so it does not linger as a zombie
	go cmd.Wait()
	return nil
}
