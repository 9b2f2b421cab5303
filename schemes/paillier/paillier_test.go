package paillier

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nillab/homint/utils/bignum"
	"github.com/nillab/homint/utils/sampling"
)

// testPrimePairs lists pairs of distinct primes of equal bit length. The
// first pair is small enough to check intermediate values by hand.
var testPrimePairs = [][2]int64{
	{61, 53},
	{104729, 65537},
}

type testContext struct {
	p, q *big.Int
	sk   *SecretKey
	pk   *PublicKey
	enc  *Encryptor
	dec  *Decryptor
	eval *Evaluator
}

func testString(opname string, tc *testContext) string {
	return fmt.Sprintf("%s/NBitLen=%d", opname, tc.pk.N.BitLen())
}

func newTestContext(t *testing.T, primes [2]int64) *testContext {

	p := big.NewInt(primes[0])
	q := big.NewInt(primes[1])

	sk, pk, err := NewKeyGenerator().GenKeyPairNew(p, q)
	require.NoError(t, err)

	prng, err := sampling.NewSeededPRNG([]byte("paillier test"))
	require.NoError(t, err)

	return &testContext{
		p:    p,
		q:    q,
		sk:   sk,
		pk:   pk,
		enc:  NewEncryptor(pk, prng),
		dec:  NewDecryptor(sk),
		eval: NewEvaluator(pk),
	}
}

func TestPaillier(t *testing.T) {
	for _, primes := range testPrimePairs {

		tc := newTestContext(t, primes)

		t.Run(testString("EncryptDecrypt", tc), func(t *testing.T) {

			nMinusOne := new(big.Int).Sub(tc.pk.N, bignum.NewInt(1))

			for _, m := range []*big.Int{
				bignum.NewInt(0),
				bignum.NewInt(1),
				bignum.NewInt(42),
				bignum.NewInt(1000),
				nMinusOne,
			} {
				ct, err := tc.enc.EncryptNew(m)
				require.NoError(t, err)
				require.Equal(t, 0, m.Cmp(tc.dec.DecryptNew(ct)))
			}
		})

		t.Run(testString("EncryptDomain", tc), func(t *testing.T) {
			_, err := tc.enc.EncryptNew(tc.pk.N)
			require.Error(t, err)
			_, err = tc.enc.EncryptNew(bignum.NewInt(-1))
			require.Error(t, err)
		})

		t.Run(testString("Add", tc), func(t *testing.T) {

			ct0, err := tc.enc.EncryptNew(bignum.NewInt(6))
			require.NoError(t, err)
			ct1, err := tc.enc.EncryptNew(bignum.NewInt(5))
			require.NoError(t, err)

			ctSum := tc.eval.AddNew(ct0, ct1)
			require.Equal(t, 0, bignum.NewInt(11).Cmp(tc.dec.DecryptNew(ctSum)))
		})

		t.Run(testString("AddWrapAround", tc), func(t *testing.T) {

			nMinusOne := new(big.Int).Sub(tc.pk.N, bignum.NewInt(1))

			ct0, err := tc.enc.EncryptNew(nMinusOne)
			require.NoError(t, err)
			ct1, err := tc.enc.EncryptNew(bignum.NewInt(2))
			require.NoError(t, err)

			ctSum := tc.eval.AddNew(ct0, ct1)
			require.Equal(t, 0, bignum.NewInt(1).Cmp(tc.dec.DecryptNew(ctSum)))
		})

		t.Run(testString("AddChained", tc), func(t *testing.T) {

			ct, err := tc.enc.EncryptNew(bignum.NewInt(1))
			require.NoError(t, err)

			for _, m := range []int64{2, 3, 4, 5} {
				var cti *Ciphertext
				cti, err = tc.enc.EncryptNew(bignum.NewInt(m))
				require.NoError(t, err)
				tc.eval.Add(ct, cti, ct)
			}

			require.Equal(t, 0, bignum.NewInt(15).Cmp(tc.dec.DecryptNew(ct)))
		})

		t.Run(testString("AddPlaintext", tc), func(t *testing.T) {

			ct, err := tc.enc.EncryptNew(bignum.NewInt(6))
			require.NoError(t, err)

			ctSum, err := tc.eval.AddPlaintextNew(ct, bignum.NewInt(7))
			require.NoError(t, err)
			require.Equal(t, 0, bignum.NewInt(13).Cmp(tc.dec.DecryptNew(ctSum)))

			_, err = tc.eval.AddPlaintextNew(ct, bignum.NewInt(-1))
			require.Error(t, err)
		})

		t.Run(testString("MulScalar", tc), func(t *testing.T) {

			ct, err := tc.enc.EncryptNew(bignum.NewInt(6))
			require.NoError(t, err)

			ctProd, err := tc.eval.MulScalarNew(ct, bignum.NewInt(5))
			require.NoError(t, err)
			require.Equal(t, 0, bignum.NewInt(30).Cmp(tc.dec.DecryptNew(ctProd)))

			ctZero, err := tc.eval.MulScalarNew(ct, bignum.NewInt(0))
			require.NoError(t, err)
			require.Equal(t, 0, bignum.NewInt(0).Cmp(tc.dec.DecryptNew(ctZero)))

			_, err = tc.eval.MulScalarNew(ct, bignum.NewInt(-1))
			require.Error(t, err)
		})

		t.Run(testString("DeterministicEncryption", tc), func(t *testing.T) {

			prng0, err := sampling.NewSeededPRNG([]byte("determinism"))
			require.NoError(t, err)
			prng1, err := sampling.NewSeededPRNG([]byte("determinism"))
			require.NoError(t, err)

			ct0, err := NewEncryptor(tc.pk, prng0).EncryptNew(bignum.NewInt(42))
			require.NoError(t, err)
			ct1, err := NewEncryptor(tc.pk, prng1).EncryptNew(bignum.NewInt(42))
			require.NoError(t, err)

			require.True(t, ct0.Equal(ct1))
		})
	}
}

// TestKnownKeyPair checks the key material derived from p = 61 and
// q = 53: n = 3233, g = 3234, lambda = 60 * 52 = 3120 and mu the inverse
// of 3120 modulo 3233, which is 2718.
func TestKnownKeyPair(t *testing.T) {

	sk, pk, err := NewKeyGenerator().GenKeyPairNew(big.NewInt(61), big.NewInt(53))
	require.NoError(t, err)

	require.Equal(t, 0, bignum.NewInt(3233).Cmp(pk.N))
	require.Equal(t, 0, bignum.NewInt(3234).Cmp(pk.G))
	require.Equal(t, 0, bignum.NewInt(3233).Cmp(sk.N))
	require.Equal(t, 0, bignum.NewInt(3120).Cmp(sk.Lambda))
	require.Equal(t, 0, bignum.NewInt(2718).Cmp(sk.Mu))
}

func TestKeyGenPreconditions(t *testing.T) {

	kgen := NewKeyGenerator()

	t.Run("PrimeLength", func(t *testing.T) {
		// 61 is 6 bits, 19 is 5 bits.
		_, _, err := kgen.GenKeyPairNew(big.NewInt(61), big.NewInt(19))
		require.ErrorIs(t, err, ErrPrimeLength)
	})

	t.Run("EqualPrimes", func(t *testing.T) {
		_, _, err := kgen.GenKeyPairNew(big.NewInt(61), big.NewInt(61))
		require.Error(t, err)
	})

	t.Run("TooSmall", func(t *testing.T) {
		_, _, err := kgen.GenKeyPairNew(big.NewInt(1), big.NewInt(1))
		require.Error(t, err)
	})

	t.Run("NonInvertibleLambda", func(t *testing.T) {
		// lambda = 1 * 2 = 2 shares a factor with n = 6.
		_, _, err := kgen.GenKeyPairNew(big.NewInt(2), big.NewInt(3))
		require.ErrorIs(t, err, bignum.ErrNoInverse)
	})
}

func TestRandomizerDraws(t *testing.T) {

	prng, err := sampling.NewSeededPRNG([]byte("randomizer"))
	require.NoError(t, err)

	t.Run("Found", func(t *testing.T) {
		n := bignum.NewInt(3233)
		r, err := drawRandomizer(prng, n, maxRandomizerDraws)
		require.NoError(t, err)
		require.True(t, bignum.Coprime(r, n))
		require.True(t, r.Sign() >= 0 && r.Cmp(n) <= 0)
	})

	t.Run("Exhausted", func(t *testing.T) {
		_, err := drawRandomizer(prng, bignum.NewInt(3233), 0)
		require.ErrorIs(t, err, ErrRandomizerExhausted)
	})
}
