package elgamal

import (
	"encoding/json"
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nillab/homint/utils/bignum"
	"github.com/nillab/homint/utils/sampling"
)

var testParametersLiteral = []ParametersLiteral{
	{P: "2579"},
	{P: "2305843009213693951"}, // 2^61 - 1
}

type testContext struct {
	params Parameters
	kgen   *KeyGenerator
	sk     *SecretKey
	pk     *PublicKey
	enc    *Encryptor
	dec    *Decryptor
	eval   *Evaluator
}

func testString(opname string, p Parameters) string {
	return fmt.Sprintf("%s/BitLen=%d", opname, p.BitLen())
}

func newTestContext(t *testing.T, paramsLit ParametersLiteral) (tc *testContext) {

	params, err := NewParametersFromLiteral(paramsLit)
	require.NoError(t, err)

	prng, err := sampling.NewSeededPRNG([]byte("elgamal test"))
	require.NoError(t, err)

	kgen := NewKeyGenerator(params, prng)
	sk, pk := kgen.GenKeyPairNew()

	return &testContext{
		params: params,
		kgen:   kgen,
		sk:     sk,
		pk:     pk,
		enc:    NewEncryptor(params, pk, prng),
		dec:    NewDecryptor(params, sk),
		eval:   NewEvaluator(params),
	}
}

func TestElGamal(t *testing.T) {
	for _, paramsLit := range testParametersLiteral {

		tc := newTestContext(t, paramsLit)
		p := tc.params.P()

		t.Run(testString("EncryptDecrypt", tc.params), func(t *testing.T) {
			for _, m := range []int64{0, 1, 2, 42, 1000} {
				msg := bignum.NewInt(m)
				msg.Mod(msg, p)
				ct, err := tc.enc.EncryptNew(msg)
				require.NoError(t, err)
				require.Equal(t, 0, tc.dec.DecryptNew(ct).Cmp(msg))
			}

			pm1 := tc.params.P()
			pm1.Sub(pm1, bignum.NewInt(1))
			ct, err := tc.enc.EncryptNew(pm1)
			require.NoError(t, err)
			require.Equal(t, 0, tc.dec.DecryptNew(ct).Cmp(pm1))
		})

		t.Run(testString("EncryptDomain", tc.params), func(t *testing.T) {
			_, err := tc.enc.EncryptNew(tc.params.P())
			require.Error(t, err)
			_, err = tc.enc.EncryptNew(bignum.NewInt(-1))
			require.Error(t, err)
		})

		t.Run(testString("Mul", tc.params), func(t *testing.T) {

			a, b := bignum.NewInt(12), bignum.NewInt(34)

			cta, err := tc.enc.EncryptNew(a)
			require.NoError(t, err)
			ctb, err := tc.enc.EncryptNew(b)
			require.NoError(t, err)

			want := new(big.Int).Mul(a, b)
			want.Mod(want, p)
			require.Equal(t, 0, tc.dec.DecryptNew(tc.eval.MulNew(cta, ctb)).Cmp(want))
		})

		t.Run(testString("MulChained", tc.params), func(t *testing.T) {

			want := bignum.NewInt(1)
			ct, err := tc.enc.EncryptNew(bignum.NewInt(1))
			require.NoError(t, err)

			for _, m := range []int64{3, 5, 7, 11, 2500} {
				cti, err := tc.enc.EncryptNew(bignum.NewInt(m))
				require.NoError(t, err)
				tc.eval.Mul(ct, cti, ct)
				want.Mul(want, bignum.NewInt(m))
				want.Mod(want, p)
			}

			require.Equal(t, 0, tc.dec.DecryptNew(ct).Cmp(want))
		})

		t.Run(testString("DeterministicEncryption", tc.params), func(t *testing.T) {

			prngA, err := sampling.NewSeededPRNG([]byte("elgamal determinism"))
			require.NoError(t, err)
			prngB, err := sampling.NewSeededPRNG([]byte("elgamal determinism"))
			require.NoError(t, err)

			ctA, err := NewEncryptor(tc.params, tc.pk, prngA).EncryptNew(bignum.NewInt(99))
			require.NoError(t, err)
			ctB, err := NewEncryptor(tc.params, tc.pk, prngB).EncryptNew(bignum.NewInt(99))
			require.NoError(t, err)

			require.True(t, ctA.Equal(ctB))
		})

		t.Run(testString("KeysCopyEqual", tc.params), func(t *testing.T) {

			pk := tc.pk.CopyNew()
			require.True(t, pk.Equal(tc.pk))
			pk.Y.Add(pk.Y, bignum.NewInt(1))
			require.False(t, pk.Equal(tc.pk))

			sk := tc.sk.CopyNew()
			require.True(t, sk.Equal(tc.sk))
			sk.X.Add(sk.X, bignum.NewInt(1))
			require.False(t, sk.Equal(tc.sk))
		})
	}
}

func TestParameters(t *testing.T) {

	params, err := NewParametersFromLiteral(testParametersLiteral[0])
	require.NoError(t, err)

	data, err := json.Marshal(params)
	require.NoError(t, err)

	var paramsRec Parameters
	require.NoError(t, json.Unmarshal(data, &paramsRec))
	require.True(t, params.Equal(&paramsRec))

	_, err = NewParametersFromLiteral(ParametersLiteral{P: "not a number"})
	require.Error(t, err)

	_, err = NewParametersFromLiteral(ParametersLiteral{P: "3"})
	require.Error(t, err)
}
