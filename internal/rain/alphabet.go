package rain

// alphabet is the fixed symbol set new glyphs are sampled from: halfwidth
// katakana plus a few punctuation marks. All runes are a single cell wide.
var alphabet = []rune("ﾊﾐﾋｰｳｼﾅﾓﾆｻﾜﾂｵﾘｱﾎﾃﾏｹﾒｴｶｷﾑﾕﾗｾﾈｽﾀﾇﾍｦｲｸｺｿﾁﾄﾉﾌﾔﾖﾙﾚﾛﾝ¦*+-,.;")
