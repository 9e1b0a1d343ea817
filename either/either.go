package either

/*
{-| A value that is one of two things: most often used to carry either an
error (Left) or a correct value (Right), but equally useful wherever two
distinct shapes of data need to flow through the same channel.

# Type and Constructors
@docs Either

# Mapping
@docs MapLeft, MapRight

# Chaining
@docs AndThen
-}
*/

type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
	IsRight() bool
}

type either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l}
}

func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r, isRight: true}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

// IsLeft reports whether e holds a Left value.
func (e either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether e holds a Right value.
func (e either[L, R]) IsRight() bool { return e.isRight }

// MapRight applies f to a Right value, passing a Left through unchanged.
func MapRight[L, R, S any](f func(R) S, e Either[L, R]) Either[L, S] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return Left[L, S](l)
	case m.Right(&r):
		return Right[L, S](f(r))
	}
	panic("either: match exhausted neither case")
}

// MapLeft applies f to a Left value, passing a Right through unchanged.
func MapLeft[L, R, S any](f func(L) S, e Either[L, R]) Either[S, R] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return Left[S, R](f(l))
	case m.Right(&r):
		return Right[S, R](r)
	}
	panic("either: match exhausted neither case")
}

// AndThen chains a Right value into f, short-circuiting a Left through unchanged.
func AndThen[L, R, S any](f func(R) Either[L, S], e Either[L, R]) Either[L, S] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return Left[L, S](l)
	case m.Right(&r):
		return f(r)
	}
	panic("either: match exhausted neither case")
}

// --- Matching --------------------------------------------------------------

type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (em matcher[L, R]) Left(v *L) Matcher[L, R] {
	if !em.e.isRight {
		*v = em.e.left
		return em
	}
	return nil
}

func (em matcher[L, R]) Right(v *R) Matcher[L, R] {
	if em.e.isRight {
		*v = em.e.right
		return em
	}
	return nil
}
