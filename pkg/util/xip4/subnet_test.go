package xip4

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	p := MustParsePrefix("192.168.1.0/24")
	subnets, err := p.Split(26)
	require.NoError(t, err)
	require.Len(t, subnets, 4)
	want := []string{"192.168.1.0/26", "192.168.1.64/26", "192.168.1.128/26", "192.168.1.192/26"}
	for i, s := range subnets {
		assert.Equal(t, want[i], s.String())
	}

	// 拆出的子网全部是父块的真子网且互不重叠
	for i, s := range subnets {
		assert.True(t, s.SubsetOf(p), "subnet %d", i)
		for j := i + 1; j < len(subnets); j++ {
			assert.False(t, s.Overlaps(subnets[j]), "subnets %d and %d", i, j)
		}
	}
}

func TestSplitErrors(t *testing.T) {
	p := MustParsePrefix("192.168.1.0/24")

	// 新前缀不严格增加
	_, err := p.Split(24)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = p.Split(16)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// 超过 32
	_, err = p.Split(33)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// 物化上限：/0 → /32 是 2^32 个结果
	_, err = MustParsePrefix("0.0.0.0/0").Split(32)
	assert.ErrorIs(t, err, ErrSplitTooLarge)

	// 恰在上限内：/8 → /24 是 65536 个
	subnets, err := MustParsePrefix("10.0.0.0/8").Split(24)
	require.NoError(t, err)
	assert.Len(t, subnets, 65536)
}

func TestSubnets(t *testing.T) {
	p := MustParsePrefix("192.168.1.0/24")
	seq, err := p.Subnets(26)
	require.NoError(t, err)

	var got []string
	for s := range seq {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{"192.168.1.0/26", "192.168.1.64/26", "192.168.1.128/26", "192.168.1.192/26"}, got)

	// 惰性遍历可以提前终止
	seq, err = MustParsePrefix("0.0.0.0/0").Subnets(32)
	require.NoError(t, err)
	n := 0
	for range seq {
		n++
		if n == 10 {
			break
		}
	}
	assert.Equal(t, 10, n)

	// 参数校验与 Split 一致
	_, err = p.Subnets(24)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name  string
		cidrs []string
		want  string
	}{
		{
			name:  "two adjacent /24",
			cidrs: []string{"192.168.0.0/24", "192.168.1.0/24"},
			want:  "192.168.0.0/23",
		},
		{
			name:  "four /26 back to /24",
			cidrs: []string{"192.168.1.0/26", "192.168.1.64/26", "192.168.1.128/26", "192.168.1.192/26"},
			want:  "192.168.1.0/24",
		},
		{
			name:  "covering block may over-cover",
			cidrs: []string{"192.168.0.0/24", "192.168.8.0/24"},
			want:  "192.168.0.0/20",
		},
		{
			name:  "unordered input",
			cidrs: []string{"10.0.3.0/24", "10.0.0.0/24"},
			want:  "10.0.0.0/22",
		},
		{
			name:  "distant blocks",
			cidrs: []string{"10.0.0.0/24", "172.16.0.0/24"},
			want:  "0.0.0.0/0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ps []Prefix
			for _, c := range tt.cidrs {
				ps = append(ps, MustParsePrefix(c))
			}
			got, err := Summarize(ps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())

			// 覆盖性：每个输入块都是结果的子网（或恰等于结果）
			for _, p := range ps {
				assert.True(t, p.SubsetOf(got) || p == got, "input %s not covered by %s", p, got)
			}
		})
	}
}

func TestSummarizeErrors(t *testing.T) {
	_, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Summarize([]Prefix{MustParsePrefix("10.0.0.0/24")})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSubsetOf(t *testing.T) {
	outer := MustParsePrefix("10.0.0.0/8")
	inner := MustParsePrefix("10.1.0.0/16")
	other := MustParsePrefix("11.0.0.0/16")

	assert.True(t, inner.SubsetOf(outer))
	assert.False(t, outer.SubsetOf(inner))
	assert.False(t, other.SubsetOf(outer))

	// 严格性：相同前缀的块互不为子网，包括自身
	assert.False(t, outer.SubsetOf(outer))
	twin := MustParsePrefix("10.0.0.0/8")
	assert.False(t, outer.SubsetOf(twin))
}

func TestSubsetOfMonotonicContainment(t *testing.T) {
	// 子网关系成立时，子块的整个地址范围都落在父块范围内
	pairs := [][2]string{
		{"192.168.1.128/25", "192.168.1.0/24"},
		{"10.255.0.0/16", "10.0.0.0/8"},
		{"172.16.5.4/30", "172.16.0.0/12"},
	}
	for _, pair := range pairs {
		sub := MustParsePrefix(pair[0])
		super := MustParsePrefix(pair[1])
		require.True(t, sub.SubsetOf(super), "%s ⊂ %s", sub, super)
		assert.True(t, super.Contains(sub.Network()))
		assert.True(t, super.Contains(sub.Broadcast()))
		assert.LessOrEqual(t, super.Network().Uint32(), sub.Network().Uint32())
		assert.GreaterOrEqual(t, super.Broadcast().Uint32(), sub.Broadcast().Uint32())
	}
}

func TestNextPrev(t *testing.T) {
	p := MustParsePrefix("192.168.1.0/24")

	next, err := p.Next()
	require.NoError(t, err)
	assert.Equal(t, "192.168.2.0/24", next.String())

	prev, err := p.Prev()
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.0/24", prev.String())

	back, err := next.Prev()
	require.NoError(t, err)
	assert.Equal(t, p, back)

	// 地址空间边界：报错而非回绕
	_, err = MustParsePrefix("255.255.255.0/24").Next()
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = MustParsePrefix("0.0.0.0/24").Prev()
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = MustParsePrefix("0.0.0.0/0").Next()
	assert.ErrorIs(t, err, ErrOverflow)
	_, err = MustParsePrefix("255.255.255.255/32").Next()
	assert.ErrorIs(t, err, ErrOverflow)
}
