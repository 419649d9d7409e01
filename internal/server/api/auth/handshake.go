package auth

import (
	"bufio"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Alia5/VISE/apitypes"
)

// Handshake layout:
//
//	client: magic | nonce[32] | HMAC-SHA256(key, context | nonce)
//	server: "OK\x00" | nonce[32]   or a problem JSON line
const (
	HandshakeMagic = "vSE1\x00"
	NonceSize      = 32
	authContext    = "VISE-Auth-v1"
	okPrefix       = "OK\x00"
)

// ErrInvalidPassword is returned by ServerHandshake when the client MAC
// does not match.
var ErrInvalidPassword = errors.New("invalid password")

func clientMAC(key, nonce []byte) []byte {
	mac := hmac.New(sha256.New, key)
	_, _ = mac.Write([]byte(authContext))
	_, _ = mac.Write(nonce)
	return mac.Sum(nil)
}

// IsAuthHandshake peeks for the handshake magic without consuming it.
func IsAuthHandshake(r *bufio.Reader) (bool, error) {
	b, err := r.Peek(len(HandshakeMagic))
	if err != nil {
		return false, err
	}
	return string(b) == HandshakeMagic, nil
}

// ReadClientNonce reads the 32 byte nonce following the magic.
func ReadClientNonce(r io.Reader) ([]byte, error) {
	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(r, nonce); err != nil {
		return nil, fmt.Errorf("read client nonce: %w", err)
	}
	return nonce, nil
}

// WriteServerHandshake sends the OK prefix and a fresh server nonce.
func WriteServerHandshake(w io.Writer) ([]byte, error) {
	if w == nil {
		return nil, errors.New("write response: nil writer")
	}
	nonce := make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate server nonce: %w", err)
	}
	if _, err := w.Write(append([]byte(okPrefix), nonce...)); err != nil {
		return nil, fmt.Errorf("write response: %w", err)
	}
	return nonce, nil
}

// ServerHandshake consumes a client handshake from r and answers on w.
func ServerHandshake(r *bufio.Reader, w io.Writer, key []byte) (clientNonce, serverNonce []byte, err error) {
	if len(key) == 0 {
		return nil, nil, errors.New("handshake: missing key")
	}
	if _, err := r.Discard(len(HandshakeMagic)); err != nil {
		return nil, nil, fmt.Errorf("discard handshake magic: %w", err)
	}
	clientNonce, err = ReadClientNonce(r)
	if err != nil {
		return nil, nil, err
	}
	got := make([]byte, sha256.Size)
	if _, err := io.ReadFull(r, got); err != nil {
		return nil, nil, fmt.Errorf("read client auth: %w", err)
	}
	if !hmac.Equal(got, clientMAC(key, clientNonce)) {
		return nil, nil, ErrInvalidPassword
	}
	serverNonce, err = WriteServerHandshake(w)
	if err != nil {
		return nil, nil, err
	}
	return clientNonce, serverNonce, nil
}

// ClientHandshake authenticates to a server. A problem response from the
// server is returned as *apitypes.ApiError.
func ClientHandshake(r *bufio.Reader, w io.Writer, key []byte) (clientNonce, serverNonce []byte, err error) {
	if len(key) == 0 {
		return nil, nil, errors.New("handshake: missing key")
	}
	clientNonce = make([]byte, NonceSize)
	if _, err := rand.Read(clientNonce); err != nil {
		return nil, nil, fmt.Errorf("generate client nonce: %w", err)
	}
	msg := append([]byte(HandshakeMagic), clientNonce...)
	msg = append(msg, clientMAC(key, clientNonce)...)
	if _, err := w.Write(msg); err != nil {
		return nil, nil, fmt.Errorf("write handshake: %w", err)
	}

	prefix := make([]byte, len(okPrefix))
	if _, err := io.ReadFull(r, prefix); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, &apitypes.ApiError{Status: 401, Title: "Unauthorized", Detail: ErrInvalidPassword.Error()}
		}
		return nil, nil, fmt.Errorf("read handshake response: %w", err)
	}
	if string(prefix) != okPrefix {
		rest, _ := io.ReadAll(r)
		line := strings.TrimSuffix(string(append(prefix, rest...)), "\n")
		var apiErr apitypes.ApiError
		if err := json.Unmarshal([]byte(line), &apiErr); err == nil && apiErr.Status != 0 {
			return nil, nil, &apiErr
		}
		return nil, nil, fmt.Errorf("invalid handshake response from server: %q", line)
	}
	serverNonce = make([]byte, NonceSize)
	if _, err := io.ReadFull(r, serverNonce); err != nil {
		return nil, nil, fmt.Errorf("read server nonce: %w", err)
	}
	return clientNonce, serverNonce, nil
}
