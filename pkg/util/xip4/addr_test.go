package xip4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOctets(t *testing.T) {
	a := Addr(0xC0A80101)
	assert.Equal(t, [4]byte{192, 168, 1, 1}, a.Octets())
	assert.Equal(t, a, AddrFrom4(a.Octets()))
}

func TestAddrFromOctets(t *testing.T) {
	tests := []struct {
		name    string
		octets  []int
		want    Addr
		wantErr bool
	}{
		{name: "normal", octets: []int{192, 168, 1, 1}, want: 0xC0A80101},
		{name: "zeros", octets: []int{0, 0, 0, 0}, want: 0},
		{name: "max", octets: []int{255, 255, 255, 255}, want: 0xFFFFFFFF},
		{name: "too few", octets: []int{192, 168, 1}, wantErr: true},
		{name: "too many", octets: []int{192, 168, 1, 1, 1}, wantErr: true},
		{name: "nil", octets: nil, wantErr: true},
		{name: "negative octet", octets: []int{192, -1, 1, 1}, wantErr: true},
		{name: "octet 256", octets: []int{192, 256, 1, 1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddrFromOctets(tt.octets)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOctet(t *testing.T) {
	a := MustParseAddr("192.168.1.254")
	for i, want := range []uint8{192, 168, 1, 254} {
		got, err := a.Octet(i)
		require.NoError(t, err)
		assert.Equal(t, want, got, "octet %d", i)
	}

	_, err := a.Octet(-1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = a.Octet(4)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWithOctet(t *testing.T) {
	a := MustParseAddr("192.168.1.1")

	got, err := a.WithOctet(2, 100)
	require.NoError(t, err)
	assert.Equal(t, MustParseAddr("192.168.100.1"), got)

	// 替换第 2 段绝不能扰动第 0/1/3 段
	for i, want := range []uint8{192, 168, 100, 1} {
		o, err := got.Octet(i)
		require.NoError(t, err)
		assert.Equal(t, want, o, "octet %d", i)
	}

	// 原地址不可变
	assert.Equal(t, MustParseAddr("192.168.1.1"), a)

	_, err = a.WithOctet(4, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = a.WithOctet(0, 256)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = a.WithOctet(0, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWithOctetPreservation(t *testing.T) {
	// setOctet(setOctet(ip, i, getOctet(ip,i)), j, v) 只改变第 j 段
	ip := MustParseAddr("10.20.30.40")
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			oi, err := ip.Octet(i)
			require.NoError(t, err)
			same, err := ip.WithOctet(i, int(oi))
			require.NoError(t, err)
			assert.Equal(t, ip, same)

			changed, err := same.WithOctet(j, 99)
			require.NoError(t, err)
			for k := 0; k < 4; k++ {
				ok, err := changed.Octet(k)
				require.NoError(t, err)
				if k == j {
					assert.Equal(t, uint8(99), ok)
				} else {
					orig, _ := ip.Octet(k)
					assert.Equal(t, orig, ok, "octet %d perturbed by i=%d j=%d", k, i, j)
				}
			}
		}
	}
}

func TestCompare(t *testing.T) {
	a := MustParseAddr("10.0.0.1")
	b := MustParseAddr("10.0.0.2")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestVersion(t *testing.T) {
	assert.Equal(t, V4, MustParseAddr("1.2.3.4").Version())
	assert.Equal(t, "IPv4", V4.String())
	assert.Equal(t, "IPv6", V6.String())
	assert.Equal(t, "unknown", V0.String())
}
