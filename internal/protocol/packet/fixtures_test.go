package packet

import (
	"strings"
	"testing"
)

type fixture struct {
	hex        string
	versionSum uint64
	value      int64
	packets    int
	depth      int
	bitLen     int
}

var fixtures = []fixture{
	{hex: "D2FE28", versionSum: 6, value: 2021, packets: 1, depth: 1, bitLen: 21},
	{hex: "38006F45291200", versionSum: 9, value: 1, packets: 3, depth: 2, bitLen: 49},
	{hex: "EE00D40C823060", versionSum: 14, value: 3, packets: 4, depth: 2, bitLen: 51},
	{hex: "8A004A801A8002F478", versionSum: 16, value: 15, packets: 4, depth: 4, bitLen: 69},
	{hex: "620080001611562C8802118E34", versionSum: 12, value: 46, packets: 7, depth: 3, bitLen: 102},
	{hex: "C0015000016115A2E0802F182340", versionSum: 23, value: 46, packets: 7, depth: 3, bitLen: 106},
	{hex: "A0016C880162017C3686B18A3D4780", versionSum: 31, value: 54, packets: 8, depth: 4, bitLen: 113},
	{hex: "C200B40A82", versionSum: 14, value: 3, packets: 3, depth: 2, bitLen: 40},
	{hex: "04005AC33890", versionSum: 8, value: 54, packets: 3, depth: 2, bitLen: 44},
	{hex: "880086C3E88112", versionSum: 15, value: 7, packets: 4, depth: 2, bitLen: 55},
	{hex: "CE00C43D881120", versionSum: 11, value: 9, packets: 4, depth: 2, bitLen: 51},
	{hex: "D8005AC2A8F0", versionSum: 13, value: 1, packets: 3, depth: 2, bitLen: 44},
	{hex: "F600BC2D8F", versionSum: 19, value: 0, packets: 3, depth: 2, bitLen: 40},
	{hex: "9C005AC2F8F0", versionSum: 16, value: 0, packets: 3, depth: 2, bitLen: 44},
	{hex: "9C0141080250320F1802104A08", versionSum: 20, value: 1, packets: 7, depth: 3, bitLen: 102},
}

// hexFromBits packs a "0101" string into hex, zero-padding the last digit.
func hexFromBits(t *testing.T, s string) string {
	t.Helper()
	for len(s)%4 != 0 {
		s += "0"
	}
	const digits = "0123456789ABCDEF"
	var sb strings.Builder
	for i := 0; i < len(s); i += 4 {
		var n byte
		for _, c := range s[i : i+4] {
			switch c {
			case '0':
				n <<= 1
			case '1':
				n = n<<1 | 1
			default:
				t.Fatalf("bad bit %q", c)
			}
		}
		sb.WriteByte(digits[n])
	}
	return sb.String()
}
