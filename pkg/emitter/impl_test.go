/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package emitter

import (
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/voedger/dpackgen/pkg/moddesc"
	"github.com/voedger/dpackgen/pkg/schema"
	"github.com/voedger/dpackgen/pkg/typedesc"
)

const scenario = `
module: sample
prefix: smpl
records:
  - name: item
    fields:
      - {name: id, type: uint32, mandatory: true}
      - {name: name, type: string}
`

func renderDoc(t *testing.T, doc string, opts moddesc.Options) *Artifacts {
	m, err := schema.Load("test.yaml", []byte(doc))
	require.NoError(t, err)
	return renderModule(t, m, opts)
}

func renderModule(t *testing.T, m *schema.Module, opts moddesc.Options) *Artifacts {
	mod, err := moddesc.Build(m, opts)
	require.NoError(t, err)
	a, err := Render(mod, Options{HeaderContent: "/* generated */\n"})
	require.NoError(t, err)
	return a
}

// function cuts the definition or prototype of name out of text.
func function(t *testing.T, text []byte, name string) string {
	s := string(text)
	at := strings.Index(s, "\n"+name+"(")
	require.GreaterOrEqual(t, at, 0, name)
	start := strings.LastIndex(s[:at], "\n") + 1
	rest := s[at:]
	def := strings.Index(rest, ")\n{\n")
	if proto := strings.Index(rest, ");\n"); proto >= 0 && (def < 0 || proto < def) {
		return s[start : at+proto+2]
	}
	end := strings.Index(rest, "\n}\n")
	require.GreaterOrEqual(t, end, 0, name)
	return s[start : at+end+2]
}

func diff(t *testing.T, want, got string) {
	if d := cmp.Diff(strings.Split(want, "\n"), strings.Split(got, "\n")); d != "" {
		t.Errorf("mismatch (-want +got):\n%s", d)
	}
}

func TestRenderScenario(t *testing.T) {
	a := renderDoc(t, scenario, moddesc.Options{Validate: true})

	t.Run("files", func(t *testing.T) {
		require := require.New(t)
		require.Equal("sample", a.Name)
		h := string(a.Declarations)
		require.True(strings.HasPrefix(h, "/* generated */\n\n#ifndef _SAMPLE_H\n#define _SAMPLE_H\n\n#include <dpack/codec.h>\n"), h)
		require.True(strings.HasSuffix(h, "\n\n#endif /* _SAMPLE_H */\n"), h)
		require.Contains(h, "#define smpl_assert(_expr) \\\n\tdpack_assert(_expr)\n")
		require.Contains(h, "#define SMPL_ITEM_MAND_FLD_NR (1U)\n")
		require.Contains(h, "#define SMPL_ITEM_VALID_FLD_MSK (0x00000003U)\n")
		require.Contains(h, "#define SMPL_ITEM_MAND_FLD_MSK (1U << SMPL_ITEM_ID_FLD)\n")
		require.NotContains(h, "OBS_FLD_MSK")

		c := string(a.Definitions)
		require.True(strings.HasPrefix(c, "/* generated */\n\n#include \"sample.h\"\n#include <string.h>\n\n"), c)
		require.NotContains(c, "regex.h")
		require.NotContains(c, "match_pattern")
	})

	t.Run("struct", func(t *testing.T) {
		diff(t, `struct smpl_item {
	uint32_t   id;
	char     * name;
	uint32_t   filled;
};`, structBlock(t, a.Declarations, "smpl_item"))
	})

	t.Run("enum", func(t *testing.T) {
		require.Contains(t, string(a.Declarations), `enum smpl_item_field {
	SMPL_ITEM_ID_FLD   = 0,
	SMPL_ITEM_NAME_FLD = 1,
	SMPL_ITEM_FLD_NR
};`)
	})

	t.Run("pack", func(t *testing.T) {
		diff(t, `int
smpl_item_pack(struct dpack_encoder * encoder, const struct smpl_item * data)
{
	int err;

	smpl_assert(encoder);
	smpl_assert(dpack_encoder_space_left(encoder) >= SMPL_ITEM_PACKED_SIZE_MIN);
	smpl_assert(data);
	smpl_assert(!(data->filled & ~SMPL_ITEM_VALID_FLD_MSK));
	smpl_assert((data->filled & SMPL_ITEM_MAND_FLD_MSK) == SMPL_ITEM_MAND_FLD_MSK);

	dpack_map_begin_encode(encoder, (unsigned int)__builtin_popcount(data->filled));

	err = smpl_item_pack_id(encoder, data);
	if (err)
		return err;

	if (data->filled & (1U << SMPL_ITEM_NAME_FLD)) {
		err = smpl_item_pack_name(encoder, data);
		if (err)
			return err;
	}

	dpack_map_end_encode(encoder);

	return 0;
}`, function(t, a.Definitions, "smpl_item_pack"))
	})

	t.Run("unpack", func(t *testing.T) {
		diff(t, `int
smpl_item_unpack(struct dpack_decoder * decoder, struct smpl_item * data)
{
	unsigned int nr;
	unsigned int fid;
	int          err;

	smpl_assert(decoder);
	smpl_assert(dpack_decoder_data_left(decoder) >= SMPL_ITEM_PACKED_SIZE_MIN);
	smpl_assert(data);
	smpl_assert(!data->filled);

	err = dpack_map_begin_decode(decoder, &nr);
	if (err)
		return err;

	if ((nr < SMPL_ITEM_MAND_FLD_NR) || (nr > SMPL_ITEM_FLD_NR))
		return -EBADMSG;

	while (nr--) {
		err = dpack_map_decode_fldid(decoder, &fid);
		if (err)
			return err;

		switch (fid) {
		case SMPL_ITEM_ID_FLD:
			err = smpl_item_unpack_id(decoder, data);
			break;
		case SMPL_ITEM_NAME_FLD:
			err = smpl_item_unpack_name(decoder, data);
			break;
		default:
			return -EBADMSG;
		}

		if (err)
			return err;
	}

	dpack_map_end_decode(decoder);

	return smpl_item_check(data);
}`, function(t, a.Definitions, "smpl_item_unpack"))
	})

	t.Run("field unpack", func(t *testing.T) {
		diff(t, `static int
smpl_item_unpack_name(struct dpack_decoder * decoder, struct smpl_item * data)
{
	ssize_t len;

	if (data->filled & (1U << SMPL_ITEM_NAME_FLD))
		return -EEXIST;

	len = dpack_decode_strdup_range(decoder, 1U, DPACK_STRLEN_MAX, &data->name);
	if (len < 0)
		return (int)len;

	data->filled |= (1U << SMPL_ITEM_NAME_FLD);

	return 0;
}`, function(t, a.Definitions, "smpl_item_unpack_name"))
	})

	t.Run("field check", func(t *testing.T) {
		diff(t, `int
smpl_item_check_name(const char * value)
{
	size_t len;

	smpl_assert(value);

	len = strnlen(value, DPACK_STRLEN_MAX + 1);
	if ((len < 1U) || (len > DPACK_STRLEN_MAX))
		return -ERANGE;

	return 0;
}`, function(t, a.Definitions, "smpl_item_check_name"))
		diff(t, `int
smpl_item_check_id(uint32_t value)
{
	(void)value;

	return 0;
}`, function(t, a.Definitions, "smpl_item_check_id"))
	})

	t.Run("accessors", func(t *testing.T) {
		diff(t, `static inline int
smpl_item_get_name(const struct smpl_item * data, const char ** value)
{
	smpl_assert(data);
	smpl_assert(value);

	if (!(data->filled & (1U << SMPL_ITEM_NAME_FLD)))
		return -ENOENT;

	*value = data->name;

	return 0;
}`, function(t, a.Declarations, "smpl_item_get_name"))
		diff(t, `static inline int
smpl_item_set_name(struct smpl_item * data, char * value)
{
	smpl_assert(data);
	smpl_assert(value);

	if (smpl_item_check_name(value))
		return -EINVAL;

	if (data->filled & (1U << SMPL_ITEM_NAME_FLD))
		free(data->name);

	data->name = value;
	data->filled |= (1U << SMPL_ITEM_NAME_FLD);

	return 0;
}`, function(t, a.Declarations, "smpl_item_set_name"))
		diff(t, `extern int
smpl_item_check(const struct smpl_item * data);`, function(t, a.Declarations, "smpl_item_check"))
	})

	t.Run("lifecycle", func(t *testing.T) {
		diff(t, `void
smpl_item_fini(struct smpl_item * data)
{
	smpl_assert(data);

	if (data->filled & (1U << SMPL_ITEM_NAME_FLD))
		smpl_item_fini_name(data);
}`, function(t, a.Definitions, "smpl_item_fini"))
		diff(t, `struct smpl_item *
smpl_item_create(void)
{
	struct smpl_item * data;

	data = smpl_item_alloc();
	if (!data)
		return NULL;

	if (smpl_item_init(data)) {
		smpl_item_free(data);
		return NULL;
	}

	return data;
}`, function(t, a.Definitions, "smpl_item_create"))
	})
}

// structBlock returns the declaration of struct name.
func structBlock(t *testing.T, text []byte, name string) string {
	s := string(text)
	start := strings.Index(s, "struct "+name+" {\n")
	require.GreaterOrEqual(t, start, 0)
	end := strings.Index(s[start:], "\n};")
	require.GreaterOrEqual(t, end, 0)
	return s[start : start+end+3]
}

func TestRenderSample(t *testing.T) {
	m, err := schema.LoadFile("../schema/testdata/sample.yaml")
	require.NoError(t, err)
	a := renderModule(t, m, moddesc.Options{})
	h, c := string(a.Declarations), string(a.Definitions)

	t.Run("declarations", func(t *testing.T) {
		require := require.New(t)
		require.Contains(h, "typedef char * smpl_label;\ntypedef uint8_t smpl_percent;\n")
		require.Contains(h, "#include <inet/port.h>\n")
		require.Contains(h, "#define SMPL_SAMPLE_LEGACY_DFLT (3U)\n")
		require.Contains(h, "\tuint16_t            tags[SMPL_SAMPLE_TAGS_NR];\n")
		require.Contains(h, "\tstruct smpl_inner   inner;\n")
		require.Contains(h, "static inline int __attribute__((deprecated))\nsmpl_sample_get_flag(")
		require.Contains(h, "extern int\nsmpl_check_id(uint32_t value);\n")
		require.Contains(h, "extern int\nsmpl_sample_consistent(const struct smpl_sample * data);\n")
		require.NotContains(h, "smpl_sample_set_legacy")
		require.Less(strings.Index(h, "struct smpl_inner {"), strings.Index(h, "struct smpl_sample {"))
		require.Less(strings.Index(h, "\nsmpl_inner_init("), strings.Index(h, "\nsmpl_sample_init("))
	})

	t.Run("definitions", func(t *testing.T) {
		require := require.New(t)
		require.Contains(c, "#include <string.h>\n#include <regex.h>\n")
		require.Less(strings.Index(c, "\nsmpl_match_pattern("), strings.Index(c, "\nsmpl_sample_check_name("))
		require.Contains(c, `err = smpl_match_pattern(value, "^([a-z]+)$", false);`)
		require.Contains(c, `err = smpl_match_pattern(value, "^(admin)$", true);`)
		require.Contains(c, "(unsigned int)__builtin_popcount((data->filled & ~SMPL_SAMPLE_OBS_FLD_MSK) | SMPL_SAMPLE_OBS_MAND_FLD_MSK)")
		require.Contains(c, "((data->filled | SMPL_SAMPLE_OBS_MAND_FLD_MSK) & SMPL_SAMPLE_MAND_FLD_MSK) != SMPL_SAMPLE_MAND_FLD_MSK")
		require.Contains(c, "return dpack_encode_uint8(encoder, SMPL_SAMPLE_LEGACY_DFLT);")
		require.Contains(c, "return inet_pack_port(encoder, &data->port);")
		require.Contains(c, "err = dpack_array_begin_decode_max(decoder, SMPL_SAMPLE_TAGS_NR, &nr);")
		require.Contains(c, "return 0;\n}")
		require.NotContains(c, "return smpl_sample_check(data);")
	})

	t.Run("list pack", func(t *testing.T) {
		require := require.New(t)
		require.Contains(c, "\tdpack_array_begin_encode(encoder, data->tags_nr);\n\n\tfor (n = 0; n < data->tags_nr; n++) {\n\t\terr = dpack_encode_uint16(encoder, data->tags[n]);\n")
		require.Contains(c, "\tdpack_array_end_encode(encoder);\n\n\treturn 0;\n}")
		require.NotContains(c, "err = dpack_array_begin_encode")
		require.NotContains(c, "err = dpack_map_begin_encode")
		require.Contains(c, "\tsmpl_assert(dpack_decoder_data_left(decoder) >= SMPL_SAMPLE_PACKED_SIZE_MIN);\n")
	})

	t.Run("list setter has memcpy declared", func(t *testing.T) {
		require.Contains(t, h, "#include <string.h>\n")
	})

	t.Run("bodies are indented", func(t *testing.T) {
		fn := function(t, a.Definitions, "smpl_inner_init")
		lines := strings.Split(fn, "\n")
		require.Equal(t, "{", lines[2])
		for _, l := range lines[3 : len(lines)-1] {
			if l != "" {
				require.True(t, strings.HasPrefix(l, "\t"), l)
			}
		}
	})

	t.Run("id range switch", func(t *testing.T) {
		diff(t, `int
smpl_sample_check_id(uint32_t value)
{
	int err;

	switch (value) {
	case 0U ... 10U:
	case 20U ... 30U:
		break;
	default:
		return -ERANGE;
	}

	err = smpl_check_id(value);
	if (err)
		return err;

	return 0;
}`, function(t, a.Definitions, "smpl_sample_check_id"))
	})

	t.Run("alias codec", func(t *testing.T) {
		diff(t, `int
smpl_decode_label(struct dpack_decoder * decoder, smpl_label * value)
{
	ssize_t len;

	smpl_assert(decoder);
	smpl_assert(value);

	len = dpack_decode_strdup_range(decoder, 1U, 15U, value);

	return (len < 0) ? (int)len : 0;
}`, function(t, a.Definitions, "smpl_decode_label"))
		diff(t, `int
smpl_encode_percent(struct dpack_encoder * encoder, smpl_percent value)
{
	smpl_assert(encoder);
	smpl_assert(dpack_encoder_space_left(encoder) >= SMPL_PERCENT_SIZE_MIN);

	return dpack_encode_uint8(encoder, value);
}`, function(t, a.Definitions, "smpl_encode_percent"))
	})

	t.Run("list set", func(t *testing.T) {
		diff(t, `static inline int
smpl_sample_set_tags(struct smpl_sample * data,
                     const uint16_t * values,
                     unsigned int nr)
{
	smpl_assert(data);
	smpl_assert(!nr || values);

	if (smpl_sample_check_tags(values, nr))
		return -EINVAL;

	if (nr)
		memcpy(data->tags, values, nr * sizeof(data->tags[0]));
	data->tags_nr = nr;
	data->filled |= (1U << SMPL_SAMPLE_TAGS_FLD);

	return 0;
}`, function(t, a.Declarations, "smpl_sample_set_tags"))
	})
}

func TestRangeCheck(t *testing.T) {
	u8 := typedesc.Unit_U8
	set := func(bounds ...int64) typedesc.RangeSet {
		var s typedesc.RangeSet
		for i := 0; i < len(bounds); i += 2 {
			s = append(s, typedesc.Interval{Lo: big.NewInt(bounds[i]), Hi: big.NewInt(bounds[i+1])})
		}
		return s
	}
	cases := []struct {
		name string
		set  typedesc.RangeSet
		want []string
	}{
		{"full", set(0, 255), nil},
		{"low", set(5, 255), []string{"if (value < 5U)", "\treturn -ERANGE;"}},
		{"high", set(0, 100), []string{"if (value > 100U)", "\treturn -ERANGE;"}},
		{"both", set(1, 100), []string{"if ((value < 1U) || (value > 100U))", "\treturn -ERANGE;"}},
		{"several", set(1, 1, 3, 9), []string{
			"switch (value) {",
			"case 1U:",
			"case 3U ... 9U:",
			"\tbreak;",
			"default:",
			"\treturn -ERANGE;",
			"}",
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var b block
			rangeCheck(&b, "value", c.set, u8.Min(), u8.Max(), u8.Literal)
			if d := cmp.Diff(c.want, b.lines); d != "" {
				t.Errorf("mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestDefine(t *testing.T) {
	cases := []struct {
		name string
		d    moddesc.Define
		want string
	}{
		{"flag", moddesc.Define{Name: "X"}, "#define X"},
		{"single", moddesc.Define{Name: "X_NR", Terms: []string{"(8U)"}}, "#define X_NR (8U)"},
		{"long", moddesc.Define{Name: "X_MSK", Terms: []string{strings.Repeat("(1U << X_A_FLD) | ", 5) + "(0U)"}},
			"#define X_MSK \\\n\t" + strings.Repeat("(1U << X_A_FLD) | ", 5) + "(0U)"},
		{"sum", moddesc.Define{Name: "X_SIZE", Terms: []string{"A", "B", "C"}}, "#define X_SIZE \\\n\t(A + \\\n\t B + \\\n\t C)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			diff(t, c.want, define(c.d))
		})
	}
}

func TestSignature(t *testing.T) {
	require := require.New(t)

	require.Equal([]string{"f(void)"}, signature("f", nil))
	require.Equal([]string{"f(int a, int b)"}, signature("f", []string{"int a", "int b"}))

	long := strings.Repeat("x", 60)
	require.Equal([]string{
		long + "(int first,",
		strings.Repeat(" ", 61) + "int second,",
		strings.Repeat(" ", 61) + "int third)",
	}, signature(long, []string{"int first", "int second", "int third"}))
}

func TestBlock(t *testing.T) {
	require := require.New(t)

	var b block
	b.blank()
	b.vars([2]string{"unsigned int", "n"}, [2]string{"int", "err"})
	b.blank()
	b.call("f(%d)", 1)
	b.blank()
	require.Equal("unsigned int n;\nint          err;\n\nerr = f(1);\nif (err)\n\treturn err;", b.String())
}
