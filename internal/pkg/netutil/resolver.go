// Package netutil 로컬 네트워크 정보를 조회하는 유틸리티를 제공합니다.
package netutil

import (
	"net"
)

// Localhost 사용 가능한 네트워크 주소를 찾지 못했을 때 반환하는 값입니다.
const Localhost = "localhost"

// interfaceAddrs 테스트에서 교체할 수 있도록 변수로 선언합니다.
var interfaceAddrs = upInterfaceAddrs

// ResolveLocalIPv4 루프백이 아닌 첫 번째 IPv4 주소를 반환합니다.
//
// 시작 배너의 Network URL 표시에만 사용되므로 실패하지 않으며,
// 인터페이스 조회에 실패하거나 주소가 없으면 "localhost"를 반환합니다.
func ResolveLocalIPv4() string {
	addrs, err := interfaceAddrs()
	if err != nil {
		return Localhost
	}

	if ip := firstIPv4(addrs); ip != "" {
		return ip
	}
	return Localhost
}

// upInterfaceAddrs 활성화된 비루프백 인터페이스의 주소 목록을 인터페이스 순서대로 반환합니다.
func upInterfaceAddrs() ([]net.Addr, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	var addrs []net.Addr
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}

		ifaceAddrs, err := iface.Addrs()
		if err != nil {
			// 하나의 인터페이스 조회 실패는 무시하고 다음 인터페이스를 확인합니다.
			continue
		}
		addrs = append(addrs, ifaceAddrs...)
	}

	return addrs, nil
}

// firstIPv4 주소 목록에서 루프백이 아닌 첫 번째 IPv4 주소를 찾습니다. 없으면 빈 문자열을 반환합니다.
func firstIPv4(addrs []net.Addr) string {
	for _, addr := range addrs {
		var ip net.IP
		switch v := addr.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		default:
			continue
		}

		if ip.IsLoopback() {
			continue
		}
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String()
		}
	}

	return ""
}
