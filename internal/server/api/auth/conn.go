package auth

import (
	"bufio"
	"bytes"
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
)

// Role fixes the first nonce byte, so the two directions of a session
// never share a nonce under the same key.
type Role byte

const (
	RoleClient Role = 'C'
	RoleServer Role = 'S'
)

func (r Role) peer() Role {
	if r == RoleClient {
		return RoleServer
	}
	return RoleClient
}

const maxPacketSize = 2 * 1024 * 1024

var ErrReplay = errors.New("auth: unexpected packet sequence")

// Conn frames every Write as length[4] | nonce[12] | ciphertext.
type Conn struct {
	net.Conn
	aead    cipher.AEAD
	role    Role
	sendCtr uint64
	recvCtr uint64
	recvBuf bytes.Buffer
	wmu     sync.Mutex
	rmu     sync.Mutex
}

func WrapConn(conn net.Conn, sessionKey []byte, role Role) (*Conn, error) {
	aead, err := chacha20poly1305.New(sessionKey)
	if err != nil {
		return nil, err
	}
	return &Conn{Conn: conn, aead: aead, role: role}, nil
}

func nonceFor(role Role, ctr uint64) []byte {
	nonce := make([]byte, chacha20poly1305.NonceSize)
	nonce[0] = byte(role)
	binary.BigEndian.PutUint64(nonce[4:], ctr)
	return nonce
}

func (s *Conn) Write(p []byte) (int, error) {
	s.wmu.Lock()
	defer s.wmu.Unlock()

	nonce := nonceFor(s.role, s.sendCtr)
	s.sendCtr++
	ct := s.aead.Seal(nil, nonce, p, nil)

	pkt := make([]byte, 4, 4+len(nonce)+len(ct))
	binary.BigEndian.PutUint32(pkt, uint32(len(nonce)+len(ct)))
	pkt = append(pkt, nonce...)
	pkt = append(pkt, ct...)
	if _, err := s.Conn.Write(pkt); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (s *Conn) Read(p []byte) (int, error) {
	s.rmu.Lock()
	defer s.rmu.Unlock()

	if s.recvBuf.Len() == 0 {
		var hdr [4]byte
		if _, err := io.ReadFull(s.Conn, hdr[:]); err != nil {
			return 0, err
		}
		length := binary.BigEndian.Uint32(hdr[:])
		if length < chacha20poly1305.NonceSize || length > maxPacketSize {
			return 0, io.ErrUnexpectedEOF
		}
		pkt := make([]byte, length)
		if _, err := io.ReadFull(s.Conn, pkt); err != nil {
			return 0, err
		}
		nonce, ct := pkt[:chacha20poly1305.NonceSize], pkt[chacha20poly1305.NonceSize:]
		if !bytes.Equal(nonce, nonceFor(s.role.peer(), s.recvCtr)) {
			return 0, ErrReplay
		}
		pt, err := s.aead.Open(nil, nonce, ct, nil)
		if err != nil {
			return 0, err
		}
		s.recvCtr++
		s.recvBuf.Write(pt)
	}
	return s.recvBuf.Read(p)
}

// BufferedConn reads through R, so bytes a bufio.Reader already pulled off
// the connection are not lost.
type BufferedConn struct {
	net.Conn
	R *bufio.Reader
}

func (c BufferedConn) Read(p []byte) (int, error) { return c.R.Read(p) }
