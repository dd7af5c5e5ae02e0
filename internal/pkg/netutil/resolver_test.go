package netutil

import (
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ipNet(s string) *net.IPNet {
	ip, n, err := net.ParseCIDR(s)
	if err != nil {
		panic(err)
	}
	n.IP = ip
	return n
}

func TestFirstIPv4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		addrs []net.Addr
		want  string
	}{
		{"주소 없음", nil, ""},
		{"IPv6만 존재", []net.Addr{ipNet("fe80::1/64")}, ""},
		{"루프백 제외", []net.Addr{ipNet("127.0.0.1/8"), ipNet("192.168.0.10/24")}, "192.168.0.10"},
		{"IPv6 다음의 IPv4", []net.Addr{ipNet("2001:db8::1/64"), ipNet("10.0.0.5/8")}, "10.0.0.5"},
		{"첫 번째 IPv4 선택", []net.Addr{ipNet("172.17.0.2/16"), ipNet("10.0.0.5/8")}, "172.17.0.2"},
		{"IPAddr 타입", []net.Addr{&net.IPAddr{IP: net.ParseIP("192.0.2.1")}}, "192.0.2.1"},
		{"지원하지 않는 타입", []net.Addr{&net.TCPAddr{IP: net.ParseIP("192.0.2.1")}}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstIPv4(tt.addrs))
		})
	}
}

func TestResolveLocalIPv4(t *testing.T) {
	original := interfaceAddrs
	t.Cleanup(func() { interfaceAddrs = original })

	t.Run("조회 실패 시 localhost", func(t *testing.T) {
		interfaceAddrs = func() ([]net.Addr, error) { return nil, errors.New("no interfaces") }
		assert.Equal(t, Localhost, ResolveLocalIPv4())
	})

	t.Run("IPv4 주소 없음", func(t *testing.T) {
		interfaceAddrs = func() ([]net.Addr, error) { return []net.Addr{ipNet("::1/128")}, nil }
		assert.Equal(t, Localhost, ResolveLocalIPv4())
	})

	t.Run("IPv4 주소 반환", func(t *testing.T) {
		interfaceAddrs = func() ([]net.Addr, error) { return []net.Addr{ipNet("192.168.1.20/24")}, nil }
		assert.Equal(t, "192.168.1.20", ResolveLocalIPv4())
	})

	t.Run("실제 인터페이스 조회", func(t *testing.T) {
		interfaceAddrs = original
		assert.NotEmpty(t, ResolveLocalIPv4())
	})
}
