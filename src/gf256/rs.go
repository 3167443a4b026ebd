package gf256

import "errors"

// ErrUncorrectable is returned by CorrectData when a codeword block has
// more errors than its error-correction capacity can repair.
var ErrUncorrectable = errors.New("gf256: block has too many errors to correct")

// EncodeECC returns the ecLen Reed-Solomon error-correction codewords
// for data (data itself is not included), computed by systematic
// (shift-register) polynomial division against the generator
// polynomial for ecLen.
func EncodeECC(data []byte, ecLen int) []byte {
	gen := Generator(ecLen)
	msg := make(Poly, len(data)+ecLen)
	copy(msg, data)

	for i := 0; i < len(data); i++ {
		coef := msg[i]
		if coef == 0 {
			continue
		}
		for j, gc := range gen {
			msg[i+j] = Add(msg[i+j], Mul(gc, coef))
		}
	}
	return msg[len(data):]
}

// CorrectData corrects up to ecLen/2 byte errors in received (data
// codewords followed by ecLen error-correction codewords), returning
// the corrected codeword block. If received already has no errors it
// is returned unchanged. ErrUncorrectable is returned when the block
// cannot be repaired.
func CorrectData(received []byte, ecLen int) ([]byte, error) {
	n := len(received)
	if ecLen <= 0 || n < ecLen {
		return received, nil
	}

	syndromeCoeffs := make(Poly, ecLen)
	noError := true
	for i := 0; i < ecLen; i++ {
		v := polyEvaluateAt(Poly(received), Exp(i))
		syndromeCoeffs[ecLen-1-i] = v
		if v != 0 {
			noError = false
		}
	}
	if noError {
		return received, nil
	}
	syndrome := normalize(syndromeCoeffs)

	sigma, omega, err := runEuclidean(buildMonomial(ecLen, 1), syndrome, ecLen)
	if err != nil {
		return nil, ErrUncorrectable
	}

	locations, err := findErrorLocations(sigma)
	if err != nil {
		return nil, ErrUncorrectable
	}
	magnitudes := findErrorMagnitudes(omega, locations)

	corrected := make([]byte, n)
	copy(corrected, received)
	for i, loc := range locations {
		position := n - 1 - Log(loc)
		if position < 0 || position >= n {
			return nil, ErrUncorrectable
		}
		corrected[position] = Add(corrected[position], magnitudes[i])
	}
	return corrected, nil
}

// --- polynomial helpers used only by the Euclidean decoder, kept
// separate from Poly/MulPoly above because they need degree-aware
// trimming that the encoder side never requires. ---

func normalize(p Poly) Poly {
	i := 0
	for i < len(p)-1 && p[i] == 0 {
		i++
	}
	return p[i:]
}

func polyDegree(p Poly) int {
	return len(p) - 1
}

func polyCoefficient(p Poly, degree int) byte {
	idx := len(p) - 1 - degree
	if idx < 0 || idx >= len(p) {
		return 0
	}
	return p[idx]
}

func polyIsZero(p Poly) bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

func polyEvaluateAt(p Poly, a byte) byte {
	if a == 0 {
		return polyCoefficient(p, 0)
	}
	result := p[0]
	for i := 1; i < len(p); i++ {
		result = Add(Mul(a, result), p[i])
	}
	return result
}

func polyAddOrSubtract(a, b Poly) Poly {
	if len(a) < len(b) {
		a, b = b, a
	}
	diff := len(a) - len(b)
	out := make(Poly, len(a))
	copy(out, a)
	for i := 0; i < len(b); i++ {
		out[i+diff] = Add(out[i+diff], b[i])
	}
	return normalize(out)
}

func polyMultiply(a, b Poly) Poly {
	if polyIsZero(a) || polyIsZero(b) {
		return Poly{0}
	}
	return normalize(MulPoly(a, b))
}

func polyMultiplyScalar(a Poly, scalar byte) Poly {
	out := make(Poly, len(a))
	for i, c := range a {
		out[i] = Mul(c, scalar)
	}
	return normalize(out)
}

func buildMonomial(degree int, coefficient byte) Poly {
	if coefficient == 0 {
		return Poly{0}
	}
	out := make(Poly, degree+1)
	out[0] = coefficient
	return out
}

func polyMultiplyByMonomial(p Poly, degree int, coefficient byte) Poly {
	if coefficient == 0 {
		return Poly{0}
	}
	out := make(Poly, len(p)+degree)
	for i, c := range p {
		out[i] = Mul(c, coefficient)
	}
	return normalize(out)
}

// runEuclidean implements the extended Euclidean algorithm variant of
// Reed-Solomon decoding: given the syndrome polynomial and x^R, it
// returns the error locator (sigma) and error evaluator (omega)
// polynomials.
func runEuclidean(a, b Poly, r int) (sigma, omega Poly, err error) {
	if polyDegree(a) < polyDegree(b) {
		a, b = b, a
	}

	rLast, cur := a, b
	tLast, t := Poly{0}, Poly{1}

	for polyDegree(cur) >= r/2 {
		rLastLast, tLastLast := rLast, tLast
		rLast, tLast = cur, t

		if polyIsZero(rLast) {
			return nil, nil, errors.New("gf256: euclidean algorithm degenerated")
		}

		cur = rLastLast
		q := Poly{0}
		denomLead := polyCoefficient(rLast, polyDegree(rLast))
		dltInverse := Div(1, denomLead)

		for polyDegree(cur) >= polyDegree(rLast) && !polyIsZero(cur) {
			degreeDiff := polyDegree(cur) - polyDegree(rLast)
			scale := Mul(polyCoefficient(cur, polyDegree(cur)), dltInverse)
			q = polyAddOrSubtract(q, buildMonomial(degreeDiff, scale))
			cur = polyAddOrSubtract(cur, polyMultiplyByMonomial(rLast, degreeDiff, scale))
		}

		t = polyAddOrSubtract(polyMultiply(q, tLast), tLastLast)

		if polyDegree(cur) >= polyDegree(rLast) {
			return nil, nil, errors.New("gf256: euclidean algorithm failed to reduce")
		}
	}

	sigmaTildeAtZero := polyCoefficient(t, 0)
	if sigmaTildeAtZero == 0 {
		return nil, nil, errors.New("gf256: sigma~(0) was zero")
	}
	inv := Div(1, sigmaTildeAtZero)
	sigma = polyMultiplyScalar(t, inv)
	omega = polyMultiplyScalar(cur, inv)
	return sigma, omega, nil
}

func findErrorLocations(sigma Poly) ([]byte, error) {
	numErrors := polyDegree(sigma)
	if numErrors == 0 {
		return nil, nil
	}
	result := make([]byte, 0, numErrors)
	for i := 1; i < 256 && len(result) < numErrors; i++ {
		if polyEvaluateAt(sigma, byte(i)) == 0 {
			result = append(result, Div(1, byte(i)))
		}
	}
	if len(result) != numErrors {
		return nil, errors.New("gf256: error locator degree does not match number of roots")
	}
	return result, nil
}

func findErrorMagnitudes(omega Poly, locations []byte) []byte {
	result := make([]byte, len(locations))
	for i, loc := range locations {
		xiInverse := Div(1, loc)
		errLocDeriv := byte(1)
		for j, other := range locations {
			if i == j {
				continue
			}
			term := Mul(other, xiInverse)
			var termPlus1 byte
			if term&1 == 0 {
				termPlus1 = term | 1
			} else {
				termPlus1 = term &^ 1
			}
			errLocDeriv = Mul(errLocDeriv, termPlus1)
		}
		result[i] = Mul(polyEvaluateAt(omega, xiInverse), Div(1, errLocDeriv))
	}
	return result
}
