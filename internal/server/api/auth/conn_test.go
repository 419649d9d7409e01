package auth_test

import (
	"encoding/binary"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/VISE/internal/server/api/auth"
)

func tcpPair(t *testing.T) (client, server net.Conn) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	client, err = net.Dial("tcp", ln.Addr().String())
	require.NoError(t, err)
	server, err = ln.Accept()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
		_ = server.Close()
	})
	return client, server
}

func TestConnRoundTrip(t *testing.T) {
	key, err := auth.DeriveKey("test123")
	require.NoError(t, err)
	c, s := tcpPair(t)

	cc, err := auth.WrapConn(c, key, auth.RoleClient)
	require.NoError(t, err)
	sc, err := auth.WrapConn(s, key, auth.RoleServer)
	require.NoError(t, err)

	for _, msg := range []string{"keys/press [\"A\"]\x00", "second"} {
		_, err = cc.Write([]byte(msg))
		require.NoError(t, err)
		buf := make([]byte, len(msg))
		_, err = io.ReadFull(sc, buf)
		require.NoError(t, err)
		assert.Equal(t, msg, string(buf))
	}

	_, err = sc.Write([]byte("{}\n"))
	require.NoError(t, err)
	buf := make([]byte, 3)
	_, err = io.ReadFull(cc, buf)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(buf))
}

func TestConnErrors(t *testing.T) {
	key, err := auth.DeriveKey("test123")
	require.NoError(t, err)
	other, err := auth.DeriveKey("123test")
	require.NoError(t, err)

	_, err = auth.WrapConn(nil, []byte{1, 2, 3}, auth.RoleClient)
	assert.ErrorContains(t, err, "chacha20poly1305: bad key length")

	t.Run("differing keys", func(t *testing.T) {
		c, s := tcpPair(t)
		cc, _ := auth.WrapConn(c, key, auth.RoleClient)
		sc, _ := auth.WrapConn(s, other, auth.RoleServer)
		_, err := cc.Write([]byte("x"))
		require.NoError(t, err)
		_, err = sc.Read(make([]byte, 1))
		assert.ErrorContains(t, err, "message authentication failed")
	})

	t.Run("reflected packet", func(t *testing.T) {
		// A packet sent by the server and bounced back must not decrypt.
		c, s := tcpPair(t)
		sc, _ := auth.WrapConn(s, key, auth.RoleServer)
		_, err := sc.Write([]byte("x"))
		require.NoError(t, err)

		raw := make([]byte, 4)
		_, err = io.ReadFull(c, raw)
		require.NoError(t, err)
		body := make([]byte, binary.BigEndian.Uint32(raw))
		_, err = io.ReadFull(c, body)
		require.NoError(t, err)
		_, err = c.Write(append(raw, body...))
		require.NoError(t, err)

		_, err = sc.Read(make([]byte, 1))
		assert.ErrorIs(t, err, auth.ErrReplay)
	})

	t.Run("oversized frame", func(t *testing.T) {
		c, s := tcpPair(t)
		sc, _ := auth.WrapConn(s, key, auth.RoleServer)
		hdr := make([]byte, 4)
		binary.BigEndian.PutUint32(hdr, 3*1024*1024)
		_, err := c.Write(hdr)
		require.NoError(t, err)
		_, err = sc.Read(make([]byte, 1))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
